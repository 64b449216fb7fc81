package trail

import (
	"fmt"
)

// ItemKind is the filesystem type of a directory entry.
type ItemKind int

const (
	KindFile ItemKind = iota
	KindDirectory
	KindSymlink
	KindOther
)

// String returns the lowercase name of the kind.
func (k ItemKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ItemState is the navigation state of an entry.
type ItemState int

const (
	// StateNormal is an entry with no navigation role.
	StateNormal ItemState = iota
	// StateSelected marks the navigation cursor in the leaf box.
	StateSelected
	// StateDirectoryInPath marks the entry that continues the path to the
	// next box in the chain.
	StateDirectoryInPath
)

// String returns the name of the state.
func (s ItemState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateSelected:
		return "selected"
	case StateDirectoryInPath:
		return "in_path"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ItemState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Entry is one raw directory entry as reported by an Enumerator.
type Entry struct {
	Name string
	Path string
	Kind ItemKind
}

// Item is an entry placed in a box.
type Item struct {
	Name           string    `json:"name"`
	DisplayName    string    `json:"display_name"`
	RenderedLength int       `json:"rendered_length"`
	Path           string    `json:"path"`
	Kind           ItemKind  `json:"kind"`
	State          ItemState `json:"state"`
}

// Truncated reports whether the displayed name differs from the real one.
func (i Item) Truncated() bool {
	return i.DisplayName != i.Name
}

// plainRenderer draws the display name without any styling.
type plainRenderer struct{}

// PlainRenderer returns an ItemRenderer that emits display names verbatim.
func PlainRenderer() ItemRenderer {
	return plainRenderer{}
}

func (plainRenderer) RenderItem(item Item, _ bool) string {
	return item.DisplayName
}
