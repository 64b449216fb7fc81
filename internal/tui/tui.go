package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ikari-pl/go-dirtrail/internal/layout"
	"github.com/ikari-pl/go-dirtrail/internal/output"
	"github.com/ikari-pl/go-dirtrail/internal/trail"
	"github.com/ikari-pl/go-dirtrail/internal/tui/theme"
)

// tui implements the TUI interface.
type tui struct {
	logger  *slog.Logger
	builder trail.Builder
	planner *layout.Planner
	styles  *theme.Styles
	width   int
}

// NewTUI creates a new TUI instance. width is used until the terminal
// reports its size.
func NewTUI(logger *slog.Logger, builder trail.Builder, planner *layout.Planner, width int) TUI {
	return &tui{
		logger:  logger,
		builder: builder,
		planner: planner,
		styles:  theme.NewStyles(theme.DefaultTheme()),
		width:   width,
	}
}

// Run starts the browser at target and blocks until the user exits.
func (t *tui) Run(ctx context.Context, target string) error {
	nav := NewNavigator(t.builder)
	if err := nav.Load(ctx, target); err != nil {
		return err
	}

	m := newModel(ctx, t.logger, nav, t.planner, t.styles, t.width)

	// Alt screen keeps the shell scrollback clean on exit.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// model is the bubbletea model of the browser.
type model struct {
	ctx       context.Context
	logger    *slog.Logger
	navigator Navigator
	planner   *layout.Planner
	styles    *theme.Styles
	keys      keyMap
	help      help.Model

	width int
	err   error
}

func newModel(ctx context.Context, logger *slog.Logger, nav Navigator, planner *layout.Planner, styles *theme.Styles, width int) *model {
	h := help.New()
	h.Width = width

	return &model{
		ctx:       ctx,
		logger:    logger,
		navigator: nav,
		planner:   planner,
		styles:    styles,
		keys:      defaultKeyMap(),
		help:      h,
		width:     width,
	}
}

// Init initializes the model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress handles key press messages.
func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.err = nil
		m.navigator.Up()

	case key.Matches(msg, m.keys.Down):
		m.err = nil
		m.navigator.Down()

	case key.Matches(msg, m.keys.Enter):
		m.setResult(m.navigator.Enter(m.ctx))

	case key.Matches(msg, m.keys.Back):
		m.setResult(m.navigator.Back(m.ctx))

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *model) setResult(err error) {
	m.err = err
	if err != nil {
		m.logger.Warn("Navigation failed", "error", err)
		return
	}
	m.logger.Debug("Navigated", "target", m.navigator.Chain().Target)
}

// View renders the header, the wrapped boxes, the status line and the help
// footer.
func (m *model) View() string {
	chain := m.navigator.Chain()
	if chain == nil {
		return "Error: No directory loaded"
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(trail.Printable(chain.Target)))
	b.WriteString("\n\n")

	formatter := output.NewTextFormatter(m.planner, m.width)
	if err := formatter.Format(m.ctx, chain, &b); err != nil {
		b.WriteString(m.styles.Error.Render(err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine(chain))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *model) statusLine(chain *trail.Chain) string {
	if m.err != nil {
		return m.styles.Error.Render(m.err.Error())
	}
	if item, ok := chain.Selected(); ok {
		return m.styles.Status.Render(fmt.Sprintf("%s (%s)", trail.Printable(item.Path), item.Kind))
	}
	return m.styles.Status.Render("(empty directory)")
}
