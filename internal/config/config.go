// Package config provides configuration management for dirtrail.
package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Truncation modes accepted by -truncate.
const (
	TruncateNone        = "none"
	TruncateStatistical = "statistical"
	TruncateFit         = "fit"
	TruncateConstant    = "constant"
)

// Output formats accepted by -format.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

var (
	validFormats     = []string{FormatText, FormatJSON, FormatMarkdown}
	validTruncations = []string{TruncateNone, TruncateStatistical, TruncateFit, TruncateConstant}
)

// valueFlags lists flags that consume the following argument.
var valueFlags = map[string]bool{
	"format":         true,
	"truncate":       true,
	"truncate-width": true,
	"width":          true,
	"spacing":        true,
	"row-spacing":    true,
}

// Config holds the application configuration.
type Config struct {
	// Target directory; defaults to the working directory.
	Path string `json:"path"`

	// Layout options
	Width      int `json:"width,omitempty"` // 0 means ask the terminal
	Spacing    int `json:"spacing"`
	RowSpacing int `json:"row_spacing"`

	// Truncation options
	Truncate      string `json:"truncate"`
	TruncateWidth int    `json:"truncate_width,omitempty"`

	// Output options
	OutputFormat string `json:"output_format"` // "text", "json", "markdown"
	NoColor      bool   `json:"no_color"`
	Interactive  bool   `json:"interactive"`

	// Debug options
	Verbose bool `json:"verbose"`
	Debug   bool `json:"debug"`
}

// NewConfig creates a new configuration with default values.
func NewConfig() *Config {
	return &Config{
		Path:          ".",
		Spacing:       1,
		RowSpacing:    1,
		Truncate:      TruncateNone,
		TruncateWidth: 24,
		OutputFormat:  FormatText,
	}
}

// ParseFlags parses command line arguments (without the program name) and
// updates the config. The directory may appear anywhere among the flags.
func (c *Config) ParseFlags(args []string) error {
	fs := c.newFlagSet()
	fs.SetOutput(io.Discard)

	flagArgs, positional := extractPositionalPaths(args)
	if err := fs.Parse(flagArgs); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	positional = append(positional, fs.Args()...)
	switch len(positional) {
	case 0:
	case 1:
		c.Path = positional[0]
	default:
		return fmt.Errorf("expected at most one directory, got %d", len(positional))
	}

	return c.Validate()
}

// PrintUsage writes the command line summary to w.
func (c *Config) PrintUsage(w io.Writer) {
	fs := c.newFlagSet()
	fs.SetOutput(w)
	fmt.Fprintln(w, "Usage: dirtrail [flags] [directory]")
	fmt.Fprintln(w)
	fs.PrintDefaults()
}

func (c *Config) newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("dirtrail", flag.ContinueOnError)

	fs.StringVar(&c.OutputFormat, "format", c.OutputFormat, "Output format (text, json, markdown)")
	fs.StringVar(&c.Truncate, "truncate", c.Truncate, "Name truncation (none, statistical, fit, constant)")
	fs.IntVar(&c.TruncateWidth, "truncate-width", c.TruncateWidth, "Name width for -truncate constant")
	fs.IntVar(&c.Width, "width", c.Width, "Layout width in columns (default: terminal width)")
	fs.IntVar(&c.Spacing, "spacing", c.Spacing, "Columns between boxes")
	fs.IntVar(&c.RowSpacing, "row-spacing", c.RowSpacing, "Blank lines between rows of boxes")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable colored entry names")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "Browse interactively")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "Verbose output")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Debug output")

	return fs
}

// extractPositionalPaths separates positional arguments from flags so that
// "dirtrail ~/src -format json" works as well as the flag-first form.
func extractPositionalPaths(args []string) (flags []string, positional []string) {
	flags = []string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			continue
		}

		flags = append(flags, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if valueFlags[name] && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, positional
}

// Validate validates the configuration and makes Path absolute.
func (c *Config) Validate() error {
	absPath, err := filepath.Abs(c.Path)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", c.Path, err)
	}
	c.Path = absPath

	info, err := os.Stat(c.Path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", c.Path)
	}
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", c.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", c.Path)
	}

	if !slices.Contains(validFormats, c.OutputFormat) {
		return fmt.Errorf("invalid output format: %s (valid: %s)", c.OutputFormat, strings.Join(validFormats, ", "))
	}

	if !slices.Contains(validTruncations, c.Truncate) {
		return fmt.Errorf("invalid truncation mode: %s (valid: %s)", c.Truncate, strings.Join(validTruncations, ", "))
	}
	if c.Truncate == TruncateConstant && c.TruncateWidth < 1 {
		return fmt.Errorf("truncate width must be at least 1, got %d", c.TruncateWidth)
	}

	if c.Width < 0 {
		return fmt.Errorf("width cannot be negative: %d", c.Width)
	}
	if c.Spacing < 0 || c.RowSpacing < 0 {
		return fmt.Errorf("spacing cannot be negative")
	}

	if c.Interactive && c.OutputFormat != FormatText {
		return fmt.Errorf("interactive mode only supports the text format")
	}

	return nil
}

// LogLevel returns the log level implied by the debug options.
func (c *Config) LogLevel() slog.Level {
	switch {
	case c.Debug:
		return slog.LevelDebug
	case c.Verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}
