package status

import (
	"strings"

	"github.com/cockroachdb/errors"
)

type lemonbar struct {
	out BarWriter
}

// NewLemonbar implements the Bar interface and supports
// generating output for lemonbar.
func NewLemonbar(out BarWriter) Bar {
	return &lemonbar{out: out}
}

var lemonbarAlign = map[AlignStr]string{
	AlignLeft:   "%{l}",
	AlignRight:  "%{r}",
	AlignCenter: "%{c}",
}

// Write emits one line per statusline. Alignment tags are only written
// when the alignment changes, colors are reset after each element and %
// in the text is escaped.
func (b *lemonbar) Write(v []Element) error {
	var sb strings.Builder

	var curalign AlignStr
	for _, e := range v {
		// Only output alignment formatting for every change, since
		// lemonbar wil overlap (overwrite) widgets otherwise.
		if e.Alignment != curalign {
			curalign = e.Alignment
			if e.Alignment != AlignNone {
				a, ok := lemonbarAlign[e.Alignment]
				if !ok {
					return errors.Wrapf(ErrInvalidAlignment, "%q", e.Alignment)
				}
				sb.WriteString(a)
			}
		}

		// Colors.
		if e.Color != nil {
			sb.WriteString("%{F" + e.Color.String() + "}")
		}
		if e.Background != nil {
			sb.WriteString("%{B" + e.Background.String() + "}")
		}

		// Contents.
		sb.WriteString(strings.ReplaceAll(e.FullText, "%", "%%"))

		// Reset colors so they do not leak into the next element.
		if e.Color != nil {
			sb.WriteString("%{F-}")
		}
		if e.Background != nil {
			sb.WriteString("%{B-}")
		}
	}
	sb.WriteByte('\n')

	if _, err := b.out.Write([]byte(sb.String())); err != nil {
		return err
	}
	return b.out.Flush()
}
