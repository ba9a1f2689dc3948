// File: services/holiday/calendar.go
package holiday

import (
	"sync"
	"time"
)

// Calendar is the default Oracle, backed by the compiled-in national holiday
// dataset plus a mutable overlay of clinic-specific holidays. All methods are
// safe for concurrent use.
type Calendar struct {
	mu      sync.RWMutex
	custom  map[string]string // date key -> name
	removed map[string]bool
}

// NewCalendar creates a Calendar backed by the built-in holiday dataset.
func NewCalendar() *Calendar {
	return &Calendar{
		custom:  make(map[string]string),
		removed: make(map[string]bool),
	}
}

const dateKeyLayout = "2006-01-02"

func dateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

func (c *Calendar) lookup(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if name, ok := c.custom[key]; ok {
		return name, true
	}
	if c.removed[key] {
		return "", false
	}
	name, ok := builtinHolidays[key]
	return name, ok
}

// IsHoliday reports whether the given date is a public holiday.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.lookup(dateKey(t))
	return ok
}

// Name returns the holiday name for the given date, if any.
func (c *Calendar) Name(t time.Time) (string, bool) {
	return c.lookup(dateKey(t))
}

// HasHolidayInWeek reports whether any day in the week containing t is a
// holiday. Weeks run Sunday through Saturday, matching the calendar grid.
func (c *Calendar) HasHolidayInWeek(t time.Time) bool {
	sunday := t.AddDate(0, 0, -int(t.Weekday()))
	for i := 0; i < 7; i++ {
		if c.IsHoliday(sunday.AddDate(0, 0, i)) {
			return true
		}
	}
	return false
}

// AddCustomHoliday marks a date as a clinic holiday with the given name.
func (c *Calendar) AddCustomHoliday(t time.Time, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := dateKey(t)
	c.custom[key] = name
	delete(c.removed, key)
}

// RemoveHoliday removes a date from the calendar, whether built-in or custom.
func (c *Calendar) RemoveHoliday(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := dateKey(t)
	delete(c.custom, key)
	c.removed[key] = true
}
