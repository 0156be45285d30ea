package status

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// BarWriter is an interface wrapping an io.Writer with
// an additional Flush() function to ensure that the bar is
// updated on write. (can use bufio.Writer).
type BarWriter interface {
	io.Writer
	Flush() error
}

// Bar receives the full list of elements on every update.
type Bar interface {
	Write(e []Element) error
}

// Element contains the fields returned from the widget generators.
type Element struct {
	Name                string   `json:"name,omitempty"`
	Instance            string   `json:"instance,omitempty"`
	Alignment           AlignStr `json:"align,omitempty"`
	FullText            string   `json:"full_text,omitempty"`
	ShortText           string   `json:"short_text,omitempty"`
	Color               *Color   `json:"color,omitempty"`
	Background          *Color   `json:"background,omitempty"`
	Border              *Color   `json:"border,omitempty"`
	MinWidth            int      `json:"min_width,omitempty"`
	Urgent              bool     `json:"urgent,omitempty"`
	Separator           bool     `json:"separator,omitempty"`
	SeparatorBlockWidth int      `json:"separator_block_width,omitempty"`
}

// AlignStr represents the various ways to aligning widgets.
type AlignStr string

const (
	AlignNone   AlignStr = ""
	AlignLeft   AlignStr = "left"
	AlignRight  AlignStr = "right"
	AlignCenter AlignStr = "center"
)

// ParseAlign validates an alignment name.
func ParseAlign(s string) (AlignStr, error) {
	switch a := AlignStr(s); a {
	case AlignNone, AlignLeft, AlignRight, AlignCenter:
		return a, nil
	}
	return AlignNone, errors.Wrapf(ErrInvalidAlignment, "%q", s)
}

// Status is used to generate the statusline from a set of widgets.
type Status struct {
	started bool
	widgets []Widget
	cache   [][]Element
	b       Bar
	log     *log.Logger

	sigstopch <-chan os.Signal
	sigcontch <-chan os.Signal
	sigtermch <-chan os.Signal
}

// NewStatus creates a new status rendering to b. A nil logger discards
// log output.
func NewStatus(b Bar, logger *log.Logger) *Status {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Status{b: b, log: logger}
}

// AddWidget adds the given widget to the slice of widgets to be
// displayed on the statusline. The order of AddWidget calls is the
// order which is used for the statusline. (May differ based upon
// alignment.)
func (s *Status) AddWidget(w Widget) error {
	if s.started {
		return errors.Wrap(ErrStarted, "cannot add a widget")
	}
	s.widgets = append(s.widgets, w)
	return nil
}

// Widgets returns the widgets added so far, including any generator
// errors recorded by a finished Start.
func (s *Status) Widgets() []Widget {
	return s.widgets
}

// SetStopSignal sets stop signal, usually this would be SIGUSR1 as
// advertised in the i3bar header.
func (s *Status) SetStopSignal(c <-chan os.Signal) error {
	if s.started {
		return errors.Wrap(ErrStarted, "cannot set stop signal")
	}
	s.sigstopch = c
	return nil
}

// SetContSignal sets cont signal, usually this would be SIGUSR2.
func (s *Status) SetContSignal(c <-chan os.Signal) error {
	if s.started {
		return errors.Wrap(ErrStarted, "cannot set cont signal")
	}
	s.sigcontch = c
	return nil
}

// SetTermSignal sets term signal, usually this would be SIGTERM.
func (s *Status) SetTermSignal(c <-chan os.Signal) error {
	if s.started {
		return errors.Wrap(ErrStarted, "cannot set term signal")
	}
	s.sigtermch = c
	return nil
}

// Start activates every widget and runs the status loop until the term
// signal is received or ctx is done. Every widget is deactivated before
// Start returns, whatever the reason for returning.
func (s *Status) Start(ctx context.Context) (err error) {
	if s.started {
		return errors.Wrap(ErrStarted, "cannot start")
	}
	s.started = true
	s.cache = make([][]Element, len(s.widgets))

	box := newMailbox()
	errorch := make(chan WidgetError, len(s.widgets))

	genctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup

	// Deactivate all widgets on every exit path.
	defer func() {
		s.log.Debug("Stopping widgets", "count", len(s.widgets))
		cancel()
		wg.Wait()
		s.log.Debug("Stopped all widgets")
	}()

	// Start goroutines.
	for i := range s.widgets {
		gctx := NewGeneratorCtx(i, box.Put)
		gen := s.widgets[i].Gen

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := gen.Generate(genctx, gctx); err != nil {
				errorch <- WidgetError{Index: gctx.Index, Error: err}
			}
		}()
	}

	// Loop until a term signal is received.
	paused := false
	for {
		select {
		case <-box.Ready():
			if paused {
				// Leave the latest updates in the mailbox until cont.
				continue
			}
			if err := s.flush(box); err != nil {
				return err
			}

		case <-s.sigstopch:
			if paused {
				s.log.Info("Received stop signal while stopped, ignoring")
				continue
			}
			s.log.Info("Received stop signal, pausing output")
			paused = true

		case <-s.sigcontch:
			if !paused {
				s.log.Info("Received cont signal while running, ignoring")
				continue
			}
			s.log.Info("Received cont signal, resuming output")
			paused = false
			if err := s.flush(box); err != nil {
				return err
			}

		case <-s.sigtermch:
			s.log.Info("Received term signal, shutting down")
			return nil

		case <-ctx.Done():
			s.log.Info("Context done, shutting down")
			return nil

		case werror := <-errorch:
			s.log.Error("Widget failed", "widget", werror.Index, "err", werror.Error)
			s.widgets[werror.Index].Error = werror.Error
			box.Put(werror.Index, []Element{errorElement(werror.Error)})
		}
	}
}

// flush applies all pending updates to the cache and writes the
// statusline once.
func (s *Status) flush(box *mailbox) error {
	pending := box.Take()
	if len(pending) == 0 {
		return nil
	}
	for i, e := range pending {
		s.cache[i] = e
	}

	v := make([]Element, 0, len(s.cache))
	for _, elems := range s.cache {
		v = append(v, elems...)
	}

	if err := s.b.Write(v); err != nil {
		return errors.Wrap(err, "write statusline")
	}
	return nil
}

func errorElement(err error) Element {
	red := ColorFromHex("#FF0000")
	return Element{Name: "error",
		Alignment: AlignRight,
		Color:     &red,
		FullText:  fmt.Sprintf("ERROR: %v", err)}
}
