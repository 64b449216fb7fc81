// Package tui provides the styled entry renderer and the interactive
// breadcrumb browser.
package tui

import (
	"context"

	"github.com/ikari-pl/go-dirtrail/internal/trail"
)

// TUI represents the terminal user interface.
type TUI interface {
	// Run starts the browser at target and blocks until the user exits.
	Run(ctx context.Context, target string) error
}

// Navigator moves the browse cursor through the filesystem. Every move that
// changes directory rebuilds the chain from scratch.
type Navigator interface {
	// Load builds the chain for target and makes it current.
	Load(ctx context.Context, target string) error

	// Chain returns the current chain, or nil before the first Load.
	Chain() *trail.Chain

	// Up moves the cursor to the previous entry of the leaf box.
	Up() bool

	// Down moves the cursor to the next entry of the leaf box.
	Down() bool

	// Enter descends into the selected entry. The current chain is kept
	// when it fails.
	Enter(ctx context.Context) error

	// Back moves to the parent directory and selects the directory just
	// left. The current chain is kept when it fails.
	Back(ctx context.Context) error
}
