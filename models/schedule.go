// File: models/schedule.go
package models

import "time"

// RecurringEntry is one bookable or explicitly-closed consultation window for a
// weekday, scoped to a year/month. Several entries may exist for the same
// weekday (morning + afternoon). StartTime < EndTime always holds for
// persisted entries.
type RecurringEntry struct {
	ID          string    `bson:"id" json:"id"`
	Year        int       `bson:"year" json:"year"`
	Month       int       `bson:"month" json:"month"`
	DayOfWeek   int       `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime   string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime     string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// SpecialEntry overrides every recurring rule for exactly one calendar date.
type SpecialEntry struct {
	ID           string    `bson:"id" json:"id"`
	SpecificDate string    `bson:"specificDate" json:"specificDate"` // "2006-01-02"
	StartTime    string    `bson:"startTime" json:"startTime"`
	EndTime      string    `bson:"endTime" json:"endTime"`
	IsAvailable  bool      `bson:"isAvailable" json:"isAvailable"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// DailyMemo is a free-text annotation keyed by date. It never affects
// availability resolution, only display.
type DailyMemo struct {
	Date      string    `bson:"date" json:"date"`
	Memo      string    `bson:"memo" json:"memo"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RecurringPatch is a partial update for a single recurring entry.
// Nil fields are left untouched.
type RecurringPatch struct {
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}
