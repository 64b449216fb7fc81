// Command dirtrail draws the path from the filesystem root to a directory as
// a breadcrumb trail of directory listings.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ikari-pl/go-dirtrail/internal/config"
	"github.com/ikari-pl/go-dirtrail/internal/layout"
	"github.com/ikari-pl/go-dirtrail/internal/output"
	"github.com/ikari-pl/go-dirtrail/internal/termsize"
	"github.com/ikari-pl/go-dirtrail/internal/trail"
	"github.com/ikari-pl/go-dirtrail/internal/tui"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute parses args, wires the components and runs them. It returns the
// process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := config.NewConfig()
	if err := cfg.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cfg.PrintUsage(stdout)
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		cfg.PrintUsage(stderr)
		return exitUsage
	}

	logger := NewLogger(cfg, stderr)

	width := cfg.Width
	if width == 0 {
		var provider termsize.Provider
		if f, ok := stdout.(*os.File); ok {
			provider = termsize.NewProvider(f)
		}
		width = termsize.Width(logger, provider, termsize.DefaultWidth)
	}

	planner := newPlanner(cfg, logger)
	builder := newBuilder(cfg, logger, width)

	var app tui.TUI
	if cfg.Interactive {
		app = tui.NewTUI(logger, builder, planner, width)
	}

	if err := run(ctx, cfg, logger, builder, planner, app, stdout, width); err != nil {
		reportError(logger, err)
		return exitFailure
	}
	return exitOK
}

// NewLogger creates the logger for cfg, writing text records to w.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
}

// run builds the chain for cfg.Path and writes it in the configured format,
// or hands over to app in interactive mode.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, builder trail.Builder, planner *layout.Planner, app tui.TUI, w io.Writer, width int) error {
	if cfg.Interactive {
		if app == nil {
			return fmt.Errorf("interactive mode requires a TUI")
		}
		logger.Debug("Starting interactive browser", "path", cfg.Path)
		return app.Run(ctx, cfg.Path)
	}

	chain, err := builder.Build(ctx, cfg.Path)
	if err != nil {
		return err
	}

	manager := output.NewManager(logger)
	manager.RegisterFormatter(output.NewTextFormatter(planner, width))
	manager.RegisterFormatter(output.NewJSONFormatter())
	manager.RegisterFormatter(output.NewMarkdownFormatter())

	return manager.Format(ctx, cfg.OutputFormat, chain, w)
}

func newPlanner(cfg *config.Config, logger *slog.Logger) *layout.Planner {
	planner := layout.NewPlanner(logger)
	planner.BoxSpacing = cfg.Spacing
	planner.RowSpacing = cfg.RowSpacing
	return planner
}

func newBuilder(cfg *config.Config, logger *slog.Logger, width int) trail.Builder {
	color := !cfg.NoColor && cfg.OutputFormat == config.FormatText
	return trail.NewBuilder(logger, trail.NewEnumerator(), trail.Options{
		Policy:   truncationPolicy(cfg, width),
		Renderer: tui.NewItemRenderer(nil, color),
	})
}

// truncationPolicy maps the -truncate mode to a policy. The fit mode sizes
// names so that every box of cfg.Path shares one row.
func truncationPolicy(cfg *config.Config, width int) trail.TruncationPolicy {
	switch cfg.Truncate {
	case config.TruncateStatistical:
		return trail.Statistical()
	case config.TruncateFit:
		return trail.FitAllBoxesInOneRow(width, trail.Depth(cfg.Path), cfg.Spacing)
	case config.TruncateConstant:
		return trail.Constant{Width: cfg.TruncateWidth}
	default:
		return trail.NoTruncation{}
	}
}

func reportError(logger *slog.Logger, err error) {
	var readErr *trail.DirectoryReadError
	if errors.As(err, &readErr) {
		logger.Error("Failed to read directory", "path", readErr.Path, "error", readErr.Err)
		return
	}
	logger.Error("dirtrail failed", "error", err)
}
