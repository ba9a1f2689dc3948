// File: services/holiday/interface.go
package holiday

import "time"

// Oracle answers holiday questions for the availability resolver. It is
// injected rather than imported globally so the resolver can be tested with a
// fixed calendar.
type Oracle interface {
	// IsHoliday reports whether the date is a public holiday.
	IsHoliday(t time.Time) bool
	// HasHolidayInWeek reports whether any day of the enclosing week
	// (Sunday through Saturday) is a public holiday.
	HasHolidayInWeek(t time.Time) bool
	// Name returns the holiday name for the date, if any.
	Name(t time.Time) (string, bool)
}
