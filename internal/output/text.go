package output

import (
	"context"
	"io"

	"github.com/ikari-pl/go-dirtrail/internal/layout"
	"github.com/ikari-pl/go-dirtrail/internal/trail"
)

// textFormatter draws the chain as boxes wrapped to the terminal width.
type textFormatter struct {
	planner *layout.Planner
	width   int
}

// NewTextFormatter creates a formatter that lays boxes out with planner in
// rows narrower than width.
func NewTextFormatter(planner *layout.Planner, width int) Formatter {
	return &textFormatter{
		planner: planner,
		width:   width,
	}
}

// Format writes the row-wrapped boxes of chain to w.
func (f *textFormatter) Format(ctx context.Context, chain *trail.Chain, w io.Writer) error {
	return f.planner.Render(w, Blocks(chain), f.width)
}

// Name returns the name of the formatter.
func (f *textFormatter) Name() string {
	return "text"
}

// Description returns a description of the output format.
func (f *textFormatter) Description() string {
	return "Directory boxes wrapped to the terminal width"
}

// Blocks returns the boxes of chain as layout blocks, root first.
func Blocks(chain *trail.Chain) []layout.Block {
	blocks := make([]layout.Block, len(chain.Boxes))
	for i, box := range chain.Boxes {
		blocks[i] = box
	}
	return blocks
}
