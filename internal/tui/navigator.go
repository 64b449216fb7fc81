package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ikari-pl/go-dirtrail/internal/trail"
)

var (
	// ErrNotDirectory is returned when descending into an entry that is not
	// a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrAtRoot is returned when moving above the filesystem root.
	ErrAtRoot = errors.New("already at the filesystem root")
	// ErrNoSelection is returned when the leaf box has no entries.
	ErrNoSelection = errors.New("nothing selected")
)

// stat resolves symlinked entries.
var stat = os.Stat

// navigator implements the Navigator interface.
type navigator struct {
	builder trail.Builder
	chain   *trail.Chain
}

// NewNavigator creates a new Navigator that builds chains with builder.
func NewNavigator(builder trail.Builder) Navigator {
	return &navigator{builder: builder}
}

// Load builds the chain for target and makes it current.
func (n *navigator) Load(ctx context.Context, target string) error {
	chain, err := n.builder.Build(ctx, target)
	if err != nil {
		return err
	}
	n.chain = chain
	return nil
}

// Chain returns the current chain.
func (n *navigator) Chain() *trail.Chain {
	return n.chain
}

// Up moves the cursor to the previous entry.
func (n *navigator) Up() bool {
	if n.chain == nil {
		return false
	}
	return n.chain.MoveSelection(-1)
}

// Down moves the cursor to the next entry.
func (n *navigator) Down() bool {
	if n.chain == nil {
		return false
	}
	return n.chain.MoveSelection(1)
}

// Enter descends into the selected directory, following symlinks.
func (n *navigator) Enter(ctx context.Context) error {
	if n.chain == nil {
		return ErrNoSelection
	}
	item, ok := n.chain.Selected()
	if !ok {
		return ErrNoSelection
	}

	isDir, err := isDirectory(item)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", item.Name, err)
	}
	if !isDir {
		return fmt.Errorf("cannot open %s: %w", item.Name, ErrNotDirectory)
	}

	return n.Load(ctx, item.Path)
}

// Back rebuilds the chain for the parent directory with the directory just
// left under the cursor.
func (n *navigator) Back(ctx context.Context) error {
	if n.chain == nil {
		return ErrAtRoot
	}
	parent, ok := trail.Parent(n.chain.Target)
	if !ok {
		return ErrAtRoot
	}

	chain, err := n.builder.BuildWithSelection(ctx, parent, n.chain.Target)
	if err != nil {
		return err
	}
	n.chain = chain
	return nil
}

func isDirectory(item trail.Item) (bool, error) {
	switch item.Kind {
	case trail.KindDirectory:
		return true, nil
	case trail.KindSymlink:
		info, err := stat(item.Path)
		if err != nil {
			return false, err
		}
		return info.IsDir(), nil
	default:
		return false, nil
	}
}
