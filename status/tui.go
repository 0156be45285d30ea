package status

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ElementsMsg carries a full statusline to the terminal model.
type ElementsMsg []Element

type teaBar struct {
	p *tea.Program
}

// NewTeaBar creates a Bar that sends every statusline to a bubbletea
// program running a TermModel. Writes after the program exited are
// dropped.
func NewTeaBar(p *tea.Program) Bar {
	return &teaBar{p: p}
}

func (b *teaBar) Write(v []Element) error {
	b.p.Send(ElementsMsg(v))
	return nil
}

// TermModel renders a statusline on a single terminal row.
type TermModel struct {
	elements []Element
	width    int
}

// NewTermModel creates an empty TermModel.
func NewTermModel() TermModel {
	return TermModel{}
}

func (m TermModel) Init() tea.Cmd {
	return nil
}

func (m TermModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ElementsMsg:
		m.elements = msg
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View groups the elements by alignment and places each group on its
// side of the row. Without a known width, or when the groups do not fit,
// the groups are joined by single spaces.
func (m TermModel) View() string {
	var left, center, right []string
	for _, e := range m.elements {
		text := elementStyle(e).Render(e.FullText)
		switch e.Alignment {
		case AlignRight:
			right = append(right, text)
		case AlignCenter:
			center = append(center, text)
		default:
			left = append(left, text)
		}
	}

	l := strings.Join(left, " ")
	c := strings.Join(center, " ")
	r := strings.Join(right, " ")

	lw, cw, rw := lipgloss.Width(l), lipgloss.Width(c), lipgloss.Width(r)
	if m.width <= 0 || lw+cw+rw+2 > m.width {
		return strings.Join(nonEmpty(l, c, r), " ") + "\n"
	}

	cstart := max((m.width-cw)/2, lw)
	gap := max(m.width-rw-cstart-cw, 0)
	return l + strings.Repeat(" ", cstart-lw) + c + strings.Repeat(" ", gap) + r + "\n"
}

func elementStyle(e Element) lipgloss.Style {
	style := lipgloss.NewStyle()
	if e.Color != nil {
		style = style.Foreground(lipgloss.Color(e.Color.String()))
	}
	if e.Background != nil {
		style = style.Background(lipgloss.Color(e.Background.String()))
	}
	if e.MinWidth > 0 {
		style = style.Width(e.MinWidth)
	}
	return style
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
