package main

import (
	"bufio"
	"io"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"github.com/jorgenbele/go-clock/status"
)

// Signals advertised to i3bar for hiding and showing the bar.
const (
	stopSignal = syscall.SIGUSR1
	contSignal = syscall.SIGUSR2
)

// newBar creates the bar named by name writing to out. For the terminal
// bar the returned program must be run by the caller.
func newBar(name string, out io.Writer) (status.Bar, *tea.Program, error) {
	w := bufio.NewWriter(out)

	switch name {
	case BarI3:
		header := status.I3BarHeader{
			Version:    1,
			StopSignal: int(stopSignal),
			ContSignal: int(contSignal),
		}
		return status.NewI3Bar(header, w), nil, nil
	case BarLemon:
		return status.NewLemonbar(w), nil, nil
	case BarDzen2:
		return status.NewDzen2Bar(w), nil, nil
	case BarTerm:
		p := tea.NewProgram(status.NewTermModel(), tea.WithOutput(out))
		return status.NewTeaBar(p), p, nil
	}
	return nil, nil, errors.Wrapf(ErrInvalidConfig, "unknown bar %q", name)
}
