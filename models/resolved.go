// File: models/resolved.go
package models

// DayStatus classifies one calendar date after the resolution ladder has run.
// Exactly one of these is produced for every date; the resolver never fails.
type DayStatus string

const (
	StatusHolidayClosed       DayStatus = "holiday_closed"
	StatusSpecialOpen         DayStatus = "special_open"
	StatusSpecialClosed       DayStatus = "special_closed"
	StatusSaturdayOpen        DayStatus = "saturday_open"
	StatusThursdayHolidayOpen DayStatus = "thursday_holiday_open"
	StatusCustomFull          DayStatus = "custom_full"
	StatusCustomPartial       DayStatus = "custom_partial"
	StatusCustomClosed        DayStatus = "custom_closed"
	StatusBasicFull           DayStatus = "basic_full"
	StatusBasicPartial        DayStatus = "basic_partial"
	StatusBasicClosed         DayStatus = "basic_closed"
)

// IsOpen reports whether the status carries bookable time ranges.
func (s DayStatus) IsOpen() bool {
	switch s {
	case StatusSpecialOpen, StatusSaturdayOpen, StatusThursdayHolidayOpen,
		StatusCustomFull, StatusCustomPartial, StatusBasicFull, StatusBasicPartial:
		return true
	}
	return false
}

// Bucket is the coarse calendar-coloring group a status maps into.
type Bucket string

const (
	BucketOpenFull     Bucket = "open_full"
	BucketOpenPartial  Bucket = "open_partial"
	BucketOpenSaturday Bucket = "open_saturday"
	BucketOpenSpecial  Bucket = "open_special"
	BucketClosed       Bucket = "closed"
)

// Bucket maps a resolved status to its calendar bucket.
func (s DayStatus) Bucket() Bucket {
	switch s {
	case StatusCustomFull, StatusBasicFull, StatusThursdayHolidayOpen:
		return BucketOpenFull
	case StatusCustomPartial, StatusBasicPartial:
		return BucketOpenPartial
	case StatusSaturdayOpen:
		return BucketOpenSaturday
	case StatusSpecialOpen:
		return BucketOpenSpecial
	default:
		return BucketClosed
	}
}

// ResolvedDay is the derived, never-persisted classification for one date.
type ResolvedDay struct {
	Date       string    `json:"date"`
	Status     DayStatus `json:"status"`
	TimeRanges []string  `json:"timeRanges"` // display strings, e.g. "10:00～13:30"
	Label      string    `json:"label"`      // short calendar label, e.g. "祝日"
}

// MonthProjection maps every date of a displayed month through the resolver.
type MonthProjection struct {
	Year    int                    `json:"year"`
	Month   int                    `json:"month"`
	Days    map[string]ResolvedDay `json:"days"` // keyed by "2006-01-02"
	Summary map[Bucket]int         `json:"summary"`
}
