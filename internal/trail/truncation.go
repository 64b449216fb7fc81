package trail

import (
	"github.com/ikari-pl/go-dirtrail/internal/stats"
)

// TruncationContext describes the names of one box. The outlier limit is
// computed on first use, so boxes that never truncate by length never run
// the statistics.
type TruncationContext struct {
	// Widths holds the display width of every name in the box.
	Widths []int

	computed bool
	limit    int
	hasLimit bool
}

// NewTruncationContext creates a context over the given name widths.
func NewTruncationContext(widths []int) *TruncationContext {
	return &TruncationContext{Widths: widths}
}

// OutlierLimit returns the widest name width that is not an upper outlier of
// the box's width distribution. ok is false when there are no upper outliers.
func (c *TruncationContext) OutlierLimit() (limit int, ok bool) {
	if c.computed {
		return c.limit, c.hasLimit
	}
	c.computed = true

	_, upper, found := stats.Outliers(c.Widths, false)
	if !found || len(upper) == 0 {
		return 0, false
	}

	// upper is ascending, so anything narrower than its first element sits
	// inside the fences.
	cutoff := upper[0]
	for _, w := range c.Widths {
		if w < cutoff && w > c.limit {
			c.limit = w
		}
	}
	c.hasLimit = c.limit > 0

	return c.limit, c.hasLimit
}

// NoTruncation displays every name in full.
type NoTruncation struct{}

func (NoTruncation) Apply(name string, _ *TruncationContext) string {
	return name
}

// ByNameLength truncates names that are statistical upper outliers to the
// widest non-outlier width in the same box.
type ByNameLength struct{}

func (ByNameLength) Apply(name string, ctx *TruncationContext) string {
	if ctx == nil {
		return name
	}
	limit, ok := ctx.OutlierLimit()
	if !ok || DisplayWidth(name) <= limit {
		return name
	}
	return truncateToWidth(name, limit)
}

// Constant truncates every name wider than Width.
type Constant struct {
	Width int
}

func (c Constant) Apply(name string, _ *TruncationContext) string {
	if DisplayWidth(name) <= c.Width {
		return name
	}
	return truncateToWidth(name, c.Width)
}

// Statistical is the automatic mode that shortens only unusually long names.
func Statistical() TruncationPolicy {
	return ByNameLength{}
}

// FitAllBoxesInOneRow is the automatic mode that truncates every name to a
// width at which boxCount boxes, separated by spacing, fit in a single row of
// terminalWidth cells. Directory titles are never truncated, so a long title
// can still push the chain onto a second row.
func FitAllBoxesInOneRow(terminalWidth, boxCount, spacing int) TruncationPolicy {
	if boxCount < 1 {
		boxCount = 1
	}

	// Rows must stay strictly narrower than the terminal.
	available := terminalWidth - spacing*(boxCount-1) - 1
	width := available/boxCount - boxFrameWidth
	if width < 1 {
		width = 1
	}

	return Constant{Width: width}
}
