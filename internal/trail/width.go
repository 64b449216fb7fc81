package trail

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// ellipsis marks a truncated name.
const ellipsis = "…"

// widthCond is fixed so that ambiguous-width runes measure the same
// regardless of the user's locale.
var widthCond = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	return widthCond.StringWidth(s)
}

// Printable replaces control characters in s with '?', the way ls does, so
// the result occupies exactly DisplayWidth(result) cells on one line.
func Printable(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '?'
		}
		return r
	}, s)
}

// truncateToWidth shortens s to at most width cells, ending in an ellipsis.
func truncateToWidth(s string, width int) string {
	if width < 1 {
		width = 1
	}
	return widthCond.Truncate(s, width, ellipsis)
}

// centerInWidth pads s with spaces to width cells. An odd leftover space goes
// on the right.
func centerInWidth(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return spaces(left) + s + spaces(gap-left)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
