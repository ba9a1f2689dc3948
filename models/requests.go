// File: models/requests.go
package models

// WeekdayTemplateRequest asks for a weekday of a month scope to be rebuilt
// from a named template.
type WeekdayTemplateRequest struct {
	Year      int    `json:"year" binding:"required"`
	Month     int    `json:"month" binding:"required"`
	DayOfWeek int    `json:"dayOfWeek"`
	Template  string `json:"template" binding:"required"`
}

// CloseWeekdayRequest asks for every window of a weekday to be disabled.
type CloseWeekdayRequest struct {
	Year      int `json:"year" binding:"required"`
	Month     int `json:"month" binding:"required"`
	DayOfWeek int `json:"dayOfWeek"`
}

// SaturdayRequest toggles the Saturday default hours for a month scope.
type SaturdayRequest struct {
	Year  int  `json:"year" binding:"required"`
	Month int  `json:"month" binding:"required"`
	Open  bool `json:"open"`
}

// SpecialDayRequest converts a date into a single-date override. Ranges may be
// empty when Available is false (an explicit closed day).
type SpecialDayRequest struct {
	Date      string `json:"date" binding:"required"`
	Ranges    []Slot `json:"ranges"`
	Available bool   `json:"available"`
}

// RecurringEntryRequest creates one recurring window directly.
type RecurringEntryRequest struct {
	Year        int    `json:"year" binding:"required"`
	Month       int    `json:"month" binding:"required"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	IsAvailable bool   `json:"isAvailable"`
}

// MemoRequest upserts the free-text memo for a date.
type MemoRequest struct {
	Memo string `json:"memo"`
}
