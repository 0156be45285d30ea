package clock

import "time"

// State holds the most recently observed wall-clock instant of a clock
// widget. It has a single writer, the TickScheduler, and notifies exactly one
// observer on every change. The observer runs on the writer's goroutine and
// may read the state freely; State is not safe for use from other goroutines
// while its scheduler is active.
type State struct {
	now      time.Time
	observer func(*State)
}

// NewState creates a State that calls observer after every Set. A nil
// observer is allowed.
func NewState(observer func(*State)) *State {
	return &State{observer: observer}
}

// Set replaces the held instant with t, truncated to millisecond precision
// and stripped of its monotonic reading, and notifies the observer.
func (s *State) Set(t time.Time) {
	s.now = t.Round(0).Truncate(time.Millisecond)
	if s.observer != nil {
		s.observer(s)
	}
}

// Now returns the held instant.
func (s *State) Now() time.Time {
	return s.now
}

// Display returns the held instant formatted for display.
func (s *State) Display() string {
	return FormatTime(s.now)
}
