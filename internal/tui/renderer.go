package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ikari-pl/go-dirtrail/internal/trail"
	"github.com/ikari-pl/go-dirtrail/internal/tui/theme"
)

// itemRenderer colours entries by kind and highlights them by state.
type itemRenderer struct {
	styles *theme.Styles
}

// NewItemRenderer returns the renderer used inside boxes. Without color it
// draws plain display names. A nil styles uses the default theme.
func NewItemRenderer(styles *theme.Styles, color bool) trail.ItemRenderer {
	if !color {
		return trail.PlainRenderer()
	}
	if styles == nil {
		styles = theme.NewStyles(theme.DefaultTheme())
	}
	return &itemRenderer{styles: styles}
}

// RenderItem styles the display name. Only escape sequences are added, so
// the visible width stays item.RenderedLength.
func (r *itemRenderer) RenderItem(item trail.Item, highlight bool) string {
	style := r.styles.ForKind(item.Kind)
	if highlight {
		if s, ok := r.styles.ForState(item.State); ok {
			style = s
		}
	}
	return style.TabWidth(lipgloss.NoTabConversion).Render(item.DisplayName)
}
