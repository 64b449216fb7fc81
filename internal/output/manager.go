package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/ikari-pl/go-dirtrail/internal/trail"
)

// manager implements the Manager interface.
type manager struct {
	logger     *slog.Logger
	formatters map[string]Formatter
}

// NewManager creates a new Manager with no formatters registered.
func NewManager(logger *slog.Logger) Manager {
	return &manager{
		logger:     logger,
		formatters: make(map[string]Formatter),
	}
}

// RegisterFormatter registers a formatter, replacing any with the same name.
func (m *manager) RegisterFormatter(formatter Formatter) {
	m.formatters[formatter.Name()] = formatter
}

// GetFormatter returns a formatter by name.
func (m *manager) GetFormatter(name string) (Formatter, error) {
	f, ok := m.formatters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
	return f, nil
}

// ListFormatters returns all available formatter names in sorted order.
func (m *manager) ListFormatters() []string {
	names := make([]string, 0, len(m.formatters))
	for name := range m.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format formats the chain using the specified formatter.
func (m *manager) Format(ctx context.Context, formatName string, chain *trail.Chain, w io.Writer) error {
	if chain == nil {
		return fmt.Errorf("chain cannot be nil")
	}

	f, err := m.GetFormatter(formatName)
	if err != nil {
		return err
	}

	m.logger.Debug("Formatting chain", "format", formatName, "boxes", chain.Len())
	if err := f.Format(ctx, chain, w); err != nil {
		return fmt.Errorf("failed to write %s output: %w", formatName, err)
	}
	return nil
}
