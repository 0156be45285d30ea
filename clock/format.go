package clock

import (
	"strconv"
	"time"
)

// FormatTime renders t as HH:MM:SS:MERIDIEM on a 12-hour clock, using the
// hour, minute and second of t in its own location. Midnight and noon both
// display as 12.
func FormatTime(t time.Time) string {
	hour, minute, second := t.Clock()

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	hour %= 12
	if hour == 0 {
		hour = 12
	}

	return padZero(hour) + ":" + padZero(minute) + ":" + padZero(second) + ":" + meridiem
}

// padZero left-pads single digit values with a 0.
func padZero(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
