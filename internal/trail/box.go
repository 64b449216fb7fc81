package trail

import (
	"path/filepath"
	"slices"
	"strings"
)

const (
	// boxFrameWidth is the border and inner padding around the content.
	boxFrameWidth = 4
	// boxFrameHeight covers the top border, title, separator and bottom border.
	boxFrameHeight = 4
	// firstItemRow is the row index of the first entry.
	firstItemRow = 3
)

// Box is the listing of one directory drawn as a framed column.
type Box struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	MinimumWidth int    `json:"minimum_width"`
	Items        []Item `json:"items"`

	renderer ItemRenderer
}

// NewBox creates a box for the directory at path from its entries. The entry
// whose path equals markedChild, if any, is marked as continuing the path.
// A nil policy means no truncation; a nil renderer draws plain names.
func NewBox(path, markedChild string, entries []Entry, policy TruncationPolicy, renderer ItemRenderer) *Box {
	if policy == nil {
		policy = NoTruncation{}
	}
	if renderer == nil {
		renderer = PlainRenderer()
	}

	// Names are measured and truncated in printable form; Name keeps the raw
	// bytes for sorting and paths.
	printable := make([]string, len(entries))
	widths := make([]int, len(entries))
	for i, e := range entries {
		printable[i] = Printable(e.Name)
		widths[i] = DisplayWidth(printable[i])
	}
	ctx := NewTruncationContext(widths)

	items := make([]Item, 0, len(entries))
	longest := 0
	for i, e := range entries {
		display := policy.Apply(printable[i], ctx)
		item := Item{
			Name:           e.Name,
			DisplayName:    display,
			RenderedLength: DisplayWidth(display),
			Path:           e.Path,
			Kind:           e.Kind,
			State:          StateNormal,
		}
		if item.RenderedLength > longest {
			longest = item.RenderedLength
		}
		if markedChild != "" && e.Path == markedChild {
			item.State = StateDirectoryInPath
		}
		items = append(items, item)
	}

	// Byte-wise order, stable for equal names.
	slices.SortStableFunc(items, func(a, b Item) int {
		return strings.Compare(a.Name, b.Name)
	})

	name := Printable(DirectoryName(path))

	return &Box{
		Name:         name,
		Path:         path,
		MinimumWidth: max(DisplayWidth(name), longest),
		Items:        items,
		renderer:     renderer,
	}
}

// DirectoryName returns the title shown for path: its last element, or the
// whole path for a filesystem root.
func DirectoryName(path string) string {
	if _, ok := Parent(path); !ok {
		return path
	}
	return filepath.Base(path)
}

// TotalWidth returns the width of the box including its frame.
func (b *Box) TotalWidth() int {
	return b.MinimumWidth + boxFrameWidth
}

// TotalHeight returns the number of rows the box occupies.
func (b *Box) TotalHeight() int {
	return len(b.Items) + boxFrameHeight
}

// RenderRow returns row of the box. Rows at or past the last one render the
// bottom border.
func (b *Box) RenderRow(row int) string {
	inner := b.MinimumWidth + 2

	switch {
	case row <= 0 || row >= b.TotalHeight()-1:
		return " " + strings.Repeat("-", inner) + " "
	case row == 1:
		return "|" + centerInWidth(b.Name, inner) + "|"
	case row == 2:
		return "|" + strings.Repeat("=", inner) + "|"
	}

	item := b.Items[row-firstItemRow]
	styled := b.renderer.RenderItem(item, item.State != StateNormal)
	return "| " + styled + spaces(b.MinimumWidth-item.RenderedLength) + " |"
}

// InPath returns the entry that continues the path, if any.
func (b *Box) InPath() (Item, bool) {
	for _, item := range b.Items {
		if item.State == StateDirectoryInPath {
			return item, true
		}
	}
	return Item{}, false
}

func (b *Box) selectedIndex() int {
	for i, item := range b.Items {
		if item.State == StateSelected {
			return i
		}
	}
	return -1
}
