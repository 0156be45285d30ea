package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestState_SetNotifiesObserver(t *testing.T) {
	var seen []string
	state := NewState(func(s *State) {
		seen = append(seen, s.Display())
	})

	state.Set(at(13, 5, 9))
	state.Set(at(0, 0, 0))

	assert.Equal(t, []string{"01:05:09:PM", "12:00:00:AM"}, seen)
	assert.Equal(t, at(0, 0, 0), state.Now())
}

func TestState_MillisecondPrecision(t *testing.T) {
	state := NewState(nil)

	state.Set(time.Date(2024, time.March, 9, 8, 7, 6, 123_456_789, time.UTC))

	assert.Equal(t, 123_000_000, state.Now().Nanosecond())
	assert.Equal(t, "08:07:06:AM", state.Display())
}

func TestState_StripsMonotonicReading(t *testing.T) {
	state := NewState(nil)
	now := time.Now()

	state.Set(now)

	// A time with a monotonic reading prints an "m=" suffix.
	assert.NotContains(t, state.Now().String(), "m=")
}
