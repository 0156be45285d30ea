package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"go.uber.org/atomic"

	"github.com/jorgenbele/go-clock/clock"
	"github.com/jorgenbele/go-clock/status"
)

// ClockStyle is how the clock element is presented.
type ClockStyle struct {
	Name       string
	Instance   string
	Alignment  status.AlignStr
	Color      *status.Color
	Background *status.Color
}

// ClockGenerator displays the current time, refreshed once per second.
type ClockGenerator struct {
	clock  clockwork.Clock
	logger *log.Logger
	style  atomic.Pointer[ClockStyle]
}

// NewClockGenerator creates a clock widget reading time from c.
func NewClockGenerator(c clockwork.Clock, style ClockStyle, logger *log.Logger) *ClockGenerator {
	g := &ClockGenerator{clock: c, logger: logger}
	g.SetStyle(style)
	return g
}

// SetStyle changes the presentation from the next tick on. It is safe to
// call while the generator runs.
func (c *ClockGenerator) SetStyle(style ClockStyle) {
	c.style.Store(&style)
}

// Generate keeps the clock active until ctx is done.
func (c *ClockGenerator) Generate(ctx context.Context, gctx *status.GeneratorCtx) error {
	state := clock.NewState(func(s *clock.State) {
		gctx.Publish([]status.Element{c.element(s.Display())})
	})

	sched := clock.NewTickScheduler(c.clock, state, c.logger)
	sched.Activate(ctx)
	defer sched.Deactivate()

	<-ctx.Done()
	return nil
}

func (c *ClockGenerator) element(text string) status.Element {
	style := c.style.Load()
	return status.Element{
		Name:       style.Name,
		Instance:   style.Instance,
		Alignment:  style.Alignment,
		Color:      style.Color,
		Background: style.Background,
		FullText:   text,
	}
}
