// Package clock keeps the current time of a clock widget fresh and formats
// it for display.
package clock

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
)

// TickInterval is the period between two ticks of an active scheduler.
const TickInterval = time.Second

// TickScheduler keeps a State fresh. While active it replaces the state with
// the current time once every TickInterval. It owns its ticker for exactly
// one activation: Activate acquires it, Deactivate releases it.
type TickScheduler struct {
	clock  clockwork.Clock
	state  *State
	logger *log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTickScheduler creates an inactive scheduler refreshing state from c.
// A nil c uses the real clock, a nil logger discards log output.
func NewTickScheduler(c clockwork.Clock, state *State, logger *log.Logger) *TickScheduler {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TickScheduler{clock: c, state: state, logger: logger}
}

// Activate initializes the state to the current time and starts ticking.
// Calling Activate on an active scheduler does nothing. Cancelling ctx
// deactivates the scheduler as if Deactivate was called.
func (s *TickScheduler) Activate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running() {
		return
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.state.Set(s.clock.Now())

	ctx, cancel := context.WithCancel(ctx)
	ticker := s.clock.NewTicker(TickInterval)
	s.cancel = cancel
	s.done = make(chan struct{})

	s.logger.Debug("Clock activated", "interval", TickInterval)
	go s.run(ctx, ticker, s.done)
}

// Deactivate stops ticking. When it returns no further tick will reach the
// state. Deactivating an inactive scheduler does nothing.
func (s *TickScheduler) Deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel, s.done = nil, nil
	s.logger.Debug("Clock deactivated")
}

// Active reports whether the scheduler is currently ticking.
func (s *TickScheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running()
}

// running must be called with mu held.
func (s *TickScheduler) running() bool {
	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		// Stopped through its context.
		return false
	default:
		return true
	}
}

func (s *TickScheduler) run(ctx context.Context, ticker clockwork.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.Chan():
			// A tick and a cancellation may be ready together.
			if ctx.Err() != nil {
				return
			}
			s.state.Set(s.clock.Now())
		}
	}
}
