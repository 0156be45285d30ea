package clock

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2024, time.March, 9, hour, min, sec, 0, time.UTC)
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"midnight", at(0, 0, 0), "12:00:00:AM"},
		{"afternoon", at(13, 5, 9), "01:05:09:PM"},
		{"before ten", at(9, 59, 59), "09:59:59:AM"},
		{"noon", at(12, 0, 0), "12:00:00:PM"},
		{"late evening", at(23, 30, 5), "11:30:05:PM"},
		{"one past midnight", at(0, 1, 0), "12:01:00:AM"},
		{"just before noon", at(11, 59, 59), "11:59:59:AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTime(tt.input))
		})
	}
}

func TestFormatTime_Meridiem(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		parts := strings.Split(FormatTime(at(hour, 0, 0)), ":")
		require.Len(t, parts, 4)

		if hour < 12 {
			assert.Equal(t, "AM", parts[3], "hour %d", hour)
		} else {
			assert.Equal(t, "PM", parts[3], "hour %d", hour)
		}
	}
}

func TestFormatTime_HourRange(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		parts := strings.Split(FormatTime(at(hour, 0, 0)), ":")
		require.Len(t, parts, 4)
		require.Len(t, parts[0], 2)

		h, err := strconv.Atoi(parts[0])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, h, 1, "hour %d", hour)
		assert.LessOrEqual(t, h, 12, "hour %d", hour)

		switch hour {
		case 0, 12:
			assert.Equal(t, 12, h)
		default:
			assert.Equal(t, hour%12, h)
		}
	}
}

func TestFormatTime_MinuteSecondPadding(t *testing.T) {
	for v := 0; v < 60; v++ {
		expected := strconv.Itoa(v)
		if v < 10 {
			expected = "0" + expected
		}

		parts := strings.Split(FormatTime(at(10, v, v)), ":")
		require.Len(t, parts, 4)
		assert.Equal(t, expected, parts[1], "minute %d", v)
		assert.Equal(t, expected, parts[2], "second %d", v)
	}
}

func TestFormatTime_Idempotent(t *testing.T) {
	ts := time.Date(2024, time.December, 31, 23, 59, 59, 999_000_000, time.UTC)
	assert.Equal(t, FormatTime(ts), FormatTime(ts))
}

func TestFormatTime_UsesLocation(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, time.June, 1, 22, 15, 0, 0, time.UTC)

	assert.Equal(t, "10:15:00:PM", FormatTime(ts))
	assert.Equal(t, "01:15:00:AM", FormatTime(ts.In(zone)))
}

func ExampleFormatTime() {
	fmt.Println(FormatTime(time.Date(2024, time.January, 1, 13, 5, 9, 0, time.UTC)))
	// Output: 01:05:09:PM
}
