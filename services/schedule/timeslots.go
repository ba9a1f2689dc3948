// File: services/schedule/timeslots.go
package schedule

import (
	"iter"
	"time"

	"clinicdesk/models"
	"clinicdesk/utils"
)

// SlotMinutes is the fixed consultation slot size.
const SlotMinutes = 30

// Slots returns a lazy, finite, restartable sequence of contiguous 30-minute
// windows fully contained in [start, end). A partial trailing window is
// dropped, not truncated. Malformed or inverted bounds yield an empty
// sequence; "no slots" is not an error.
func Slots(start, end string) iter.Seq[models.Slot] {
	return func(yield func(models.Slot) bool) {
		s, okS := utils.ParseClock(start)
		e, okE := utils.ParseClock(end)
		if !okS || !okE || s >= e {
			return
		}
		for cur := s; cur+SlotMinutes <= e; cur += SlotMinutes {
			slot := models.Slot{
				Start: utils.FormatClock(cur),
				End:   utils.FormatClock(cur + SlotMinutes),
			}
			if !yield(slot) {
				return
			}
		}
	}
}

// GenerateTimeSlots materializes Slots into a slice.
func GenerateTimeSlots(start, end string) []models.Slot {
	var slots []models.Slot
	for slot := range Slots(start, end) {
		slots = append(slots, slot)
	}
	return slots
}

// Named weekday templates used by the bulk intents.
const (
	TemplateFull      = "full"      // 10:00–13:30 and 15:00–19:00
	TemplateMorning   = "morning"   // 10:00–13:30
	TemplateAfternoon = "afternoon" // 15:00–19:00
	TemplateSaturday  = "saturday"  // 09:00–12:30 and 14:00–17:30
	TemplateClosed    = "closed"
)

var templateBlocks = map[string][]models.Slot{
	TemplateFull: {
		{Start: "10:00", End: "13:30"},
		{Start: "15:00", End: "19:00"},
	},
	TemplateMorning: {
		{Start: "10:00", End: "13:30"},
	},
	TemplateAfternoon: {
		{Start: "15:00", End: "19:00"},
	},
	TemplateSaturday: {
		{Start: "09:00", End: "12:30"},
		{Start: "14:00", End: "17:30"},
	},
	TemplateClosed: {},
}

// TemplateBlocks returns the consultation blocks of a named template.
func TemplateBlocks(name string) ([]models.Slot, bool) {
	blocks, ok := templateBlocks[name]
	return blocks, ok
}

// BasicBlocks returns the default consultation blocks for a weekday.
// Thursday is a regular day off unless its week contains a holiday, in which
// case it runs the full template. Sunday yields the Saturday shape here; the
// resolver, not this function, decides whether Sunday is open at all.
func BasicBlocks(dow time.Weekday, weekHasHoliday bool) []models.Slot {
	switch dow {
	case time.Monday:
		return templateBlocks[TemplateAfternoon]
	case time.Tuesday, time.Wednesday, time.Friday:
		return templateBlocks[TemplateFull]
	case time.Thursday:
		if weekHasHoliday {
			return templateBlocks[TemplateFull]
		}
		return nil
	case time.Saturday, time.Sunday:
		return templateBlocks[TemplateSaturday]
	}
	return nil
}

// BasicTimeSlots expands a weekday's basic blocks into 30-minute slots.
func BasicTimeSlots(dow time.Weekday, weekHasHoliday bool) []models.Slot {
	var slots []models.Slot
	for _, block := range BasicBlocks(dow, weekHasHoliday) {
		slots = append(slots, GenerateTimeSlots(block.Start, block.End)...)
	}
	return slots
}
