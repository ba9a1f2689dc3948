package utils

import "fmt"

// ParseClock converts an "HH:MM" wall-clock string into minutes since midnight.
// Malformed input yields (0, false) rather than an error; callers treat that as
// "produce nothing". "24:00" is accepted as the exclusive upper bound of a day.
func ParseClock(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h, ok := twoDigits(s[0], s[1])
	if !ok {
		return 0, false
	}
	m, ok := twoDigits(s[3], s[4])
	if !ok {
		return 0, false
	}
	if h > 24 || m > 59 || (h == 24 && m != 0) {
		return 0, false
	}
	return h*60 + m, true
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatClockRange renders a pair of clock strings as a display range,
// e.g. "10:00～13:30". The full-width tilde matches the clinic's calendar UI.
func FormatClockRange(start, end string) string {
	return start + "～" + end
}
