// Package termsize reports the dimensions of the controlling terminal.
package termsize

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth is used when neither the terminal nor the environment knows
// the width.
const DefaultWidth = 80

// UnavailableError reports that the terminal size could not be determined.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("terminal size unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Provider returns the terminal dimensions in cells.
type Provider interface {
	Size() (columns, rows int, err error)
}

// getSize is swapped in tests.
var getSize = term.GetSize

// fdProvider queries the terminal attached to a file descriptor.
type fdProvider struct {
	fd int
}

// NewProvider creates a Provider for the terminal attached to f.
func NewProvider(f *os.File) Provider {
	return &fdProvider{fd: int(f.Fd())}
}

// Size queries the terminal. Any failure, including a zero width, is an
// *UnavailableError.
func (p *fdProvider) Size() (int, int, error) {
	columns, rows, err := getSize(p.fd)
	if err != nil {
		return 0, 0, &UnavailableError{Err: err}
	}
	if columns <= 0 {
		return 0, 0, &UnavailableError{Err: fmt.Errorf("reported width %d", columns)}
	}
	return columns, rows, nil
}

// Width resolves the width to lay out for. It asks provider first, then the
// COLUMNS environment variable, and finally falls back to fallback.
func Width(logger *slog.Logger, provider Provider, fallback int) int {
	if provider != nil {
		columns, _, err := provider.Size()
		if err == nil {
			return columns
		}
		logger.Debug("Terminal size unavailable", "error", err)
	}

	if env := os.Getenv("COLUMNS"); env != "" {
		columns, err := strconv.Atoi(env)
		if err == nil && columns > 0 {
			logger.Debug("Using COLUMNS for terminal width", "columns", columns)
			return columns
		}
		logger.Warn("Ignoring invalid COLUMNS value", "value", env)
	}

	if fallback <= 0 {
		fallback = DefaultWidth
	}
	logger.Debug("Using fallback terminal width", "columns", fallback)
	return fallback
}
