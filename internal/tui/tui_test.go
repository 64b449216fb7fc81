package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ikari-pl/go-dirtrail/internal/layout"
	"github.com/ikari-pl/go-dirtrail/internal/trail"
	"github.com/ikari-pl/go-dirtrail/internal/tui/theme"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeFS maps a directory to its entries. Names ending in "/" are directories.
type fakeFS map[string][]string

func (f fakeFS) ReadDir(path string) ([]trail.Entry, error) {
	names, ok := f[path]
	if !ok {
		return nil, &trail.DirectoryReadError{Path: path, Err: os.ErrPermission}
	}

	entries := make([]trail.Entry, 0, len(names))
	for _, name := range names {
		kind := trail.KindFile
		if strings.HasSuffix(name, "/") {
			kind = trail.KindDirectory
			name = strings.TrimSuffix(name, "/")
		}
		entries = append(entries, trail.Entry{
			Name: name,
			Path: filepath.Join(path, name),
			Kind: kind,
		})
	}
	return entries, nil
}

func sampleFS() fakeFS {
	return fakeFS{
		"/":           {"etc/", "home/", "vmlinuz"},
		"/home":       {"alice/", "bob/"},
		"/home/alice": {"notes.txt", "projects/"},
		"/home/bob":   {},
	}
}

func newTestNavigator(t *testing.T, target string) Navigator {
	t.Helper()
	builder := trail.NewBuilder(testLogger(), sampleFS(), trail.Options{})
	nav := NewNavigator(builder)
	if err := nav.Load(context.Background(), target); err != nil {
		t.Fatalf("Load(%q) error = %v", target, err)
	}
	return nav
}

func selectedPath(t *testing.T, nav Navigator) string {
	t.Helper()
	item, ok := nav.Chain().Selected()
	if !ok {
		t.Fatal("expected a selected entry")
	}
	return item.Path
}

func TestItemRendererPlain(t *testing.T) {
	r := NewItemRenderer(nil, false)
	item := trail.Item{Name: "notes.txt", DisplayName: "no…", RenderedLength: 3, Kind: trail.KindFile}

	if got := r.RenderItem(item, true); got != "no…" {
		t.Errorf("RenderItem() = %q, want %q", got, "no…")
	}
}

func TestItemRendererKeepsWidth(t *testing.T) {
	r := NewItemRenderer(theme.NewStyles(nil), true)

	tests := []struct {
		name      string
		item      trail.Item
		highlight bool
	}{
		{"file", trail.Item{DisplayName: "main.go", RenderedLength: 7, Kind: trail.KindFile}, false},
		{"directory", trail.Item{DisplayName: "src", RenderedLength: 3, Kind: trail.KindDirectory}, false},
		{"wide", trail.Item{DisplayName: "日本語", RenderedLength: 6, Kind: trail.KindDirectory}, false},
		{"selected", trail.Item{DisplayName: "a b", RenderedLength: 3, Kind: trail.KindFile, State: trail.StateSelected}, true},
		{"in path", trail.Item{DisplayName: "home", RenderedLength: 4, Kind: trail.KindDirectory, State: trail.StateDirectoryInPath}, true},
		{"symlink", trail.Item{DisplayName: "link", RenderedLength: 4, Kind: trail.KindSymlink}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.RenderItem(tt.item, tt.highlight)
			if w := lipgloss.Width(got); w != tt.item.RenderedLength {
				t.Errorf("RenderItem() width = %d, want %d (%q)", w, tt.item.RenderedLength, got)
			}
			if !strings.Contains(got, tt.item.DisplayName) {
				t.Errorf("RenderItem() = %q, should contain %q", got, tt.item.DisplayName)
			}
		})
	}
}

func TestNavigatorMoveSelection(t *testing.T) {
	nav := newTestNavigator(t, "/home/alice")

	if got := selectedPath(t, nav); got != "/home/alice/notes.txt" {
		t.Fatalf("initial selection = %q, want first entry", got)
	}

	if nav.Up() {
		t.Error("Up() at the first entry should not move")
	}
	if !nav.Down() {
		t.Error("Down() should move")
	}
	if got := selectedPath(t, nav); got != "/home/alice/projects" {
		t.Errorf("selection = %q, want /home/alice/projects", got)
	}
	if nav.Down() {
		t.Error("Down() at the last entry should not move")
	}
	if !nav.Up() {
		t.Error("Up() should move")
	}
}

func TestNavigatorEnter(t *testing.T) {
	ctx := context.Background()
	nav := newTestNavigator(t, "/home")

	if err := nav.Enter(ctx); err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	if got := nav.Chain().Target; got != "/home/alice" {
		t.Errorf("Target = %q, want /home/alice", got)
	}
	if got := nav.Chain().Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}

	// notes.txt is a file.
	err := nav.Enter(ctx)
	if !errors.Is(err, ErrNotDirectory) {
		t.Errorf("Enter() on a file error = %v, want ErrNotDirectory", err)
	}
	if got := nav.Chain().Target; got != "/home/alice" {
		t.Errorf("failed Enter changed target to %q", got)
	}
}

func TestNavigatorEnterUnreadable(t *testing.T) {
	nav := newTestNavigator(t, "/home/alice")
	nav.Down()

	err := nav.Enter(context.Background())
	var readErr *trail.DirectoryReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("Enter() error = %v, want *trail.DirectoryReadError", err)
	}
	if readErr.Path != "/home/alice/projects" {
		t.Errorf("error path = %q, want /home/alice/projects", readErr.Path)
	}
	if got := nav.Chain().Target; got != "/home/alice" {
		t.Errorf("failed Enter changed target to %q", got)
	}
}

func TestNavigatorEnterEmptyDirectory(t *testing.T) {
	nav := newTestNavigator(t, "/home/bob")

	if err := nav.Enter(context.Background()); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Enter() error = %v, want ErrNoSelection", err)
	}
}

func TestNavigatorBack(t *testing.T) {
	ctx := context.Background()
	nav := newTestNavigator(t, "/home/bob")

	if err := nav.Back(ctx); err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if got := nav.Chain().Target; got != "/home" {
		t.Errorf("Target = %q, want /home", got)
	}
	if got := selectedPath(t, nav); got != "/home/bob" {
		t.Errorf("selection = %q, want the directory just left", got)
	}

	if err := nav.Back(ctx); err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if err := nav.Back(ctx); !errors.Is(err, ErrAtRoot) {
		t.Errorf("Back() at root error = %v, want ErrAtRoot", err)
	}
	if got := nav.Chain().Target; got != "/" {
		t.Errorf("Target = %q, want /", got)
	}
}

func TestNavigatorEnterSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	builder := trail.NewBuilder(testLogger(), trail.NewEnumerator(), trail.Options{})
	nav := NewNavigator(builder)
	ctx := context.Background()
	if err := nav.Load(ctx, dir); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Entries sort as link, real.
	item, _ := nav.Chain().Selected()
	if item.Kind != trail.KindSymlink {
		t.Fatalf("selected kind = %v, want symlink", item.Kind)
	}
	if err := nav.Enter(ctx); err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	if got := nav.Chain().Target; got != filepath.Join(dir, "link") {
		t.Errorf("Target = %q, want the symlink path", got)
	}
}

func newTestModel(t *testing.T, target string) *model {
	t.Helper()
	return newModel(
		context.Background(),
		testLogger(),
		newTestNavigator(t, target),
		layout.NewPlanner(testLogger()),
		theme.NewStyles(nil),
		80,
	)
}

func press(m *model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelNavigation(t *testing.T) {
	m := newTestModel(t, "/home")

	press(m, runes("j"))
	if got := selectedPath(t, m.navigator); got != "/home/bob" {
		t.Errorf("after j selection = %q, want /home/bob", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	if got := selectedPath(t, m.navigator); got != "/home/alice" {
		t.Errorf("after up selection = %q, want /home/alice", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.navigator.Chain().Target; got != "/home/alice" {
		t.Errorf("after enter target = %q, want /home/alice", got)
	}

	press(m, runes("h"))
	if got := m.navigator.Chain().Target; got != "/home" {
		t.Errorf("after h target = %q, want /home", got)
	}
	if got := selectedPath(t, m.navigator); got != "/home/alice" {
		t.Errorf("after h selection = %q, want /home/alice", got)
	}
}

func TestModelNavigationError(t *testing.T) {
	m := newTestModel(t, "/home/alice")

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	if !errors.Is(m.err, ErrNotDirectory) {
		t.Fatalf("err = %v, want ErrNotDirectory", m.err)
	}
	if !strings.Contains(m.View(), "not a directory") {
		t.Error("View() should show the navigation error")
	}

	press(m, runes("j"))
	if m.err != nil {
		t.Errorf("moving the cursor should clear the error, got %v", m.err)
	}
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, "/home")
		cmd := press(m, msg)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", msg)
		}
	}
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel(t, "/home/alice")
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})

	if m.width != 30 {
		t.Errorf("width = %d, want 30", m.width)
	}

	view := m.View()
	if !strings.Contains(view, "/home/alice") {
		t.Error("View() should show the target in the header")
	}
	for _, title := range []string{"home", "alice", "projects"} {
		if !strings.Contains(view, title) {
			t.Errorf("View() should contain %q", title)
		}
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, "/home")

	press(m, runes("?"))
	if !m.help.ShowAll {
		t.Error("? should expand the help footer")
	}
	press(m, runes("?"))
	if m.help.ShowAll {
		t.Error("? should collapse the help footer")
	}
}
