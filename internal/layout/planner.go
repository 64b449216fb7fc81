// Package layout wraps a sequence of fixed-size text blocks into rows that
// fit a terminal width and draws them line by line.
package layout

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Block is a rectangular piece of text that can be drawn one row at a time.
type Block interface {
	TotalWidth() int
	TotalHeight() int
	// RenderRow returns row i, exactly TotalWidth cells wide.
	RenderRow(i int) string
}

// Row is the half-open range [Start, End) of blocks drawn side by side.
type Row struct {
	Start int
	End   int
}

// Len returns the number of blocks in the row.
func (r Row) Len() int {
	return r.End - r.Start
}

// Planner packs blocks greedily into rows.
type Planner struct {
	// BoxSpacing is the number of fill characters between adjacent blocks.
	BoxSpacing int
	// BoxSpacingChar fills the gap between blocks.
	BoxSpacingChar rune
	// RowSpacing is the number of blank lines after each row.
	RowSpacing int
	// RowSpacingChar fills lines below a short block and the blank lines.
	RowSpacingChar rune

	logger *slog.Logger
}

// NewPlanner creates a Planner with single-space spacing between blocks and
// one blank line between rows.
func NewPlanner(logger *slog.Logger) *Planner {
	return &Planner{
		BoxSpacing:     1,
		BoxSpacingChar: ' ',
		RowSpacing:     1,
		RowSpacingChar: ' ',
		logger:         logger,
	}
}

// NextRow returns the row that starts at start. A block is accepted while the
// row, counting spacing only between blocks, stays narrower than width. An
// empty row always accepts its first block, so a block wider than the
// terminal gets a row of its own instead of stalling the layout.
func (p *Planner) NextRow(blocks []Block, start, width int) Row {
	end := start
	running := 0

	for end < len(blocks) {
		candidate := running + blocks[end].TotalWidth() + p.BoxSpacing
		roomForMore := candidate < width
		completesRow := candidate-p.BoxSpacing < width

		if !roomForMore && !completesRow {
			if end == start {
				end++
			}
			break
		}

		running = candidate
		end++
	}

	return Row{Start: start, End: end}
}

// Rows partitions blocks into rows for the given width.
func (p *Planner) Rows(blocks []Block, width int) []Row {
	var rows []Row
	for start := 0; start < len(blocks); {
		row := p.NextRow(blocks, start, width)
		rows = append(rows, row)
		start = row.End
	}
	return rows
}

// Render draws blocks to w, wrapped at width. Rows are planned one at a time
// as they are drawn.
func (p *Planner) Render(w io.Writer, blocks []Block, width int) error {
	rowCount := 0
	for start := 0; start < len(blocks); {
		row := p.NextRow(blocks, start, width)
		if err := p.renderRow(w, blocks, row); err != nil {
			return err
		}
		start = row.End
		rowCount++
	}

	if p.logger != nil {
		p.logger.Debug("Rendered layout", "blocks", len(blocks), "rows", rowCount, "width", width)
	}
	return nil
}

func (p *Planner) renderRow(w io.Writer, blocks []Block, row Row) error {
	height := 0
	for _, b := range blocks[row.Start:row.End] {
		height = max(height, b.TotalHeight())
	}

	gap := repeatRune(p.BoxSpacingChar, p.BoxSpacing)

	var line strings.Builder
	for i := 0; i < height+p.RowSpacing; i++ {
		line.Reset()
		for j := row.Start; j < row.End; j++ {
			b := blocks[j]
			if i < b.TotalHeight() {
				line.WriteString(b.RenderRow(i))
			} else {
				line.WriteString(repeatRune(p.RowSpacingChar, b.TotalWidth()))
			}
			if j < row.End-1 {
				line.WriteString(gap)
			}
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return fmt.Errorf("failed to write layout row: %w", err)
		}
	}

	return nil
}

func repeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}
