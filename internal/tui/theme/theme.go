// Package theme provides the fixed colour palette used to draw directory
// entries and the interactive browser chrome.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ikari-pl/go-dirtrail/internal/trail"
)

// Theme represents the complete visual theme for the application.
type Theme struct {
	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Muted   lipgloss.Color
	Subtle  lipgloss.Color
	Text    lipgloss.Color

	// Semantic colors
	Error lipgloss.Color

	// Entry kind colors
	Directory lipgloss.Color
	File      lipgloss.Color
	Symlink   lipgloss.Color
	Other     lipgloss.Color

	// Navigation state colors
	Selection lipgloss.Color
	InPath    lipgloss.Color
}

// DefaultTheme returns the dark theme used everywhere.
func DefaultTheme() *Theme {
	return &Theme{
		Base:    lipgloss.Color("#0d1117"),
		Surface: lipgloss.Color("#161b22"),
		Muted:   lipgloss.Color("#484f58"),
		Subtle:  lipgloss.Color("#6e7681"),
		Text:    lipgloss.Color("#e6edf3"),

		Error: lipgloss.Color("#f85149"),

		Directory: lipgloss.Color("#58a6ff"),
		File:      lipgloss.Color("#e6edf3"),
		Symlink:   lipgloss.Color("#79c0ff"),
		Other:     lipgloss.Color("#d29922"),

		Selection: lipgloss.Color("#388bfd"),
		InPath:    lipgloss.Color("#3fb950"),
	}
}

// Styles holds all pre-configured styles for the UI.
type Styles struct {
	theme *Theme

	// Entry styles
	Directory lipgloss.Style
	File      lipgloss.Style
	Symlink   lipgloss.Style
	Other     lipgloss.Style

	// State styles
	Selected lipgloss.Style
	InPath   lipgloss.Style

	// Browser chrome
	Header lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	s := &Styles{theme: theme}

	s.Directory = lipgloss.NewStyle().
		Foreground(theme.Directory).
		Bold(true)

	s.File = lipgloss.NewStyle().
		Foreground(theme.File)

	s.Symlink = lipgloss.NewStyle().
		Foreground(theme.Symlink).
		Italic(true)

	s.Other = lipgloss.NewStyle().
		Foreground(theme.Other)

	s.Selected = lipgloss.NewStyle().
		Foreground(theme.Base).
		Background(theme.Selection).
		Bold(true)

	s.InPath = lipgloss.NewStyle().
		Foreground(theme.InPath).
		Bold(true).
		Underline(true)

	s.Header = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Surface).
		Bold(true).
		Padding(0, 1)

	s.Status = lipgloss.NewStyle().
		Foreground(theme.Subtle)

	s.Error = lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true)

	return s
}

// Theme returns the theme the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// ForKind returns the style for an entry of the given kind.
func (s *Styles) ForKind(kind trail.ItemKind) lipgloss.Style {
	switch kind {
	case trail.KindDirectory:
		return s.Directory
	case trail.KindFile:
		return s.File
	case trail.KindSymlink:
		return s.Symlink
	default:
		return s.Other
	}
}

// ForState returns the highlight style for a navigation state. ok is false
// for entries without a navigation role.
func (s *Styles) ForState(state trail.ItemState) (style lipgloss.Style, ok bool) {
	switch state {
	case trail.StateSelected:
		return s.Selected, true
	case trail.StateDirectoryInPath:
		return s.InPath, true
	default:
		return lipgloss.Style{}, false
	}
}
