package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ikari-pl/go-dirtrail/internal/trail"
)

// jsonFormatter writes the chain as one indented JSON document: the target,
// then every box root first with its entries and their navigation states.
type jsonFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() Formatter {
	return &jsonFormatter{}
}

// Format encodes chain to w.
func (f *jsonFormatter) Format(ctx context.Context, chain *trail.Chain, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(chain)
}

// Name returns the name of the formatter.
func (f *jsonFormatter) Name() string {
	return "json"
}

// Description returns a description of the output format.
func (f *jsonFormatter) Description() string {
	return "JSON document of every box with its entries, kinds and navigation states"
}
