// Package trail builds the breadcrumb chain of directory boxes that runs from
// the filesystem root down to a target directory.
package trail

import (
	"context"
)

// Builder constructs breadcrumb chains.
type Builder interface {
	// Build walks from target up to the filesystem root and returns the
	// root-first chain of boxes, with the leaf's first entry selected.
	Build(ctx context.Context, target string) (*Chain, error)

	// BuildWithSelection is Build, but selects the leaf entry whose path equals
	// selected when there is one.
	BuildWithSelection(ctx context.Context, target, selected string) (*Chain, error)
}

// Enumerator lists the entries of a single directory.
type Enumerator interface {
	// ReadDir returns the entries of path in no particular order, or a
	// *DirectoryReadError if the directory cannot be listed.
	ReadDir(path string) ([]Entry, error)
}

// ItemRenderer turns an item into the text drawn inside a box.
// The returned string must occupy exactly item.RenderedLength terminal cells.
type ItemRenderer interface {
	RenderItem(item Item, highlight bool) string
}

// TruncationPolicy decides the displayed form of an entry name.
type TruncationPolicy interface {
	// Apply returns the name to display. ctx describes every name in the box.
	Apply(name string, ctx *TruncationContext) string
}
