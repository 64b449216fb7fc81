// Package output provides the formats a breadcrumb chain can be written in.
package output

import (
	"context"
	"io"

	"github.com/ikari-pl/go-dirtrail/internal/trail"
)

// Formatter provides methods for formatting breadcrumb chains into different output formats.
type Formatter interface {
	// Format formats the given chain and writes it to the writer.
	Format(ctx context.Context, chain *trail.Chain, w io.Writer) error

	// Name returns the name of the formatter.
	Name() string

	// Description returns a description of the output format.
	Description() string
}

// Manager manages multiple output formatters.
type Manager interface {
	// RegisterFormatter registers a new formatter.
	RegisterFormatter(formatter Formatter)

	// GetFormatter returns a formatter by name.
	GetFormatter(name string) (Formatter, error)

	// ListFormatters returns all available formatter names.
	ListFormatters() []string

	// Format formats the chain using the specified formatter.
	Format(ctx context.Context, formatName string, chain *trail.Chain, w io.Writer) error
}
