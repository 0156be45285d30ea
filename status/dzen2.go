package status

import (
	"strings"
)

type dzen2 struct {
	out BarWriter
}

// NewDzen2Bar implements the Bar interface and supports
// generating output for dzen2.
func NewDzen2Bar(out BarWriter) Bar {
	return &dzen2{out: out}
}

// Write emits one line per statusline, coloring elements with
// ^fg()/^bg() commands and escaping ^ in their text.
func (b *dzen2) Write(v []Element) error {
	var sb strings.Builder

	for _, e := range v {
		// TODO: Alignment needs dzen2's ^p() positioning, which depends on
		// the rendered width of the remaining elements.

		// Colors.
		if e.Color != nil {
			sb.WriteString("^fg(" + e.Color.String() + ")")
		}
		if e.Background != nil {
			sb.WriteString("^bg(" + e.Background.String() + ")")
		}

		// Contents.
		sb.WriteString(strings.ReplaceAll(e.FullText, "^", "^^"))

		if e.Color != nil {
			sb.WriteString("^fg()")
		}
		if e.Background != nil {
			sb.WriteString("^bg()")
		}
	}
	sb.WriteByte('\n')

	if _, err := b.out.Write([]byte(sb.String())); err != nil {
		return err
	}
	return b.out.Flush()
}
