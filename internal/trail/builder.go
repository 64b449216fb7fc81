package trail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
)

// Options configures a Builder.
type Options struct {
	// Policy is applied to every entry name. Nil means no truncation.
	Policy TruncationPolicy
	// Renderer draws entries inside boxes. Nil draws plain names.
	Renderer ItemRenderer
}

// builder implements the Builder interface.
type builder struct {
	logger     *slog.Logger
	enumerator Enumerator
	policy     TruncationPolicy
	renderer   ItemRenderer
}

// NewBuilder creates a new Builder reading directories through enumerator.
func NewBuilder(logger *slog.Logger, enumerator Enumerator, opts Options) Builder {
	if opts.Policy == nil {
		opts.Policy = NoTruncation{}
	}
	if opts.Renderer == nil {
		opts.Renderer = PlainRenderer()
	}

	return &builder{
		logger:     logger,
		enumerator: enumerator,
		policy:     opts.Policy,
		renderer:   opts.Renderer,
	}
}

// Build walks from target up to the filesystem root.
func (b *builder) Build(ctx context.Context, target string) (*Chain, error) {
	return b.BuildWithSelection(ctx, target, "")
}

// BuildWithSelection walks from target up to the filesystem root. Boxes are
// discovered leaf-first and prepended, so the chain reads root-first.
func (b *builder) BuildWithSelection(ctx context.Context, target, selected string) (*Chain, error) {
	target, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("invalid target path: %w", err)
	}
	b.logger.Debug("Building breadcrumb chain", "target", target)

	boxes := make([]*Box, 0, Depth(target))
	current := target
	markedChild := ""

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, err := b.enumerator.ReadDir(current)
		if err != nil {
			var readErr *DirectoryReadError
			if !errors.As(err, &readErr) {
				err = &DirectoryReadError{Path: current, Err: err}
			}
			return nil, err
		}

		box := NewBox(current, markedChild, entries, b.policy, b.renderer)
		boxes = slices.Insert(boxes, 0, box)
		b.logger.Debug("Built directory box",
			"path", box.Path,
			"items", len(box.Items),
			"minimum_width", box.MinimumWidth)

		parent, ok := Parent(current)
		if !ok {
			break
		}
		markedChild = current
		current = parent
	}

	chain := &Chain{Target: target, Boxes: boxes}
	chain.selectDefault(selected)

	b.logger.Info("Breadcrumb chain built", "target", target, "boxes", len(boxes))
	return chain, nil
}

// Parent returns the directory containing path. ok is false at the
// filesystem root.
func Parent(path string) (string, bool) {
	parent := filepath.Dir(path)
	if parent == path {
		return "", false
	}
	return parent, true
}

// Ancestors returns path and every directory above it, root first.
func Ancestors(path string) []string {
	path = filepath.Clean(path)
	out := []string{path}
	for {
		parent, ok := Parent(path)
		if !ok {
			break
		}
		out = append(out, parent)
		path = parent
	}
	slices.Reverse(out)
	return out
}

// Depth returns the number of boxes a chain for path contains.
func Depth(path string) int {
	return len(Ancestors(path))
}
