package output

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ikari-pl/go-dirtrail/internal/trail"
)

// markdownFormatter writes one section per directory in the chain.
type markdownFormatter struct{}

// NewMarkdownFormatter creates a new Markdown formatter.
func NewMarkdownFormatter() Formatter {
	return &markdownFormatter{}
}

// Format formats the given chain and writes it to the writer as Markdown.
func (f *markdownFormatter) Format(ctx context.Context, chain *trail.Chain, w io.Writer) error {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", codeSpan(chain.Target)))

	for _, box := range chain.Boxes {
		buf.WriteString(fmt.Sprintf("## %s\n\n", codeSpan(box.Name)))

		if len(box.Items) == 0 {
			buf.WriteString("_(empty)_\n\n")
			continue
		}

		for _, item := range box.Items {
			name := item.Name
			if item.Kind == trail.KindDirectory {
				name += "/"
			}
			entry := codeSpan(name)

			switch item.State {
			case trail.StateDirectoryInPath:
				buf.WriteString(fmt.Sprintf("- **%s**\n", entry))
			case trail.StateSelected:
				buf.WriteString(fmt.Sprintf("- > %s\n", entry))
			default:
				buf.WriteString(fmt.Sprintf("- %s\n", entry))
			}
		}
		buf.WriteString("\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Name returns the name of the formatter.
func (f *markdownFormatter) Name() string {
	return "markdown"
}

// Description returns a description of the output format.
func (f *markdownFormatter) Description() string {
	return "Markdown outline with one section per directory"
}

// codeSpan wraps s in backticks, using a double fence when s has its own.
// Control characters are replaced so the span stays on one line.
func codeSpan(s string) string {
	s = trail.Printable(s)
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}
