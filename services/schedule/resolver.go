// File: services/schedule/resolver.go
package schedule

import (
	"sort"
	"time"

	"clinicdesk/models"
	"clinicdesk/services/holiday"
	"clinicdesk/utils"
)

// Resolve classifies one calendar date. Rules run in strict precedence order
// and the first match wins:
//
//  1. public holiday — closed, regardless of any stored data
//  2. special-date override — open or closed as it says
//  3. Saturday — recurring entries, else the default Saturday hours
//  4. Thursday — open (full) only when the week contains a holiday
//  5. Sunday — closed; Sunday opens only through a special override
//  6. custom recurring entries for the weekday
//  7. the weekday's basic template
//  8. closed fallback
//
// Resolve is total: it returns a valid status for every input, including
// empty or malformed source data.
func Resolve(date time.Time, specials []models.SpecialEntry, recurring []models.RecurringEntry, oracle holiday.Oracle) models.ResolvedDay {
	day := models.ResolvedDay{Date: date.Format(utils.DateLayout)}

	// 1. Public holiday outranks everything, including a special override
	// that deliberately opens the date.
	if oracle.IsHoliday(date) {
		day.Status = models.StatusHolidayClosed
		day.Label = "祝日"
		return day
	}

	// 2. Special-date override: first matching row wins.
	for _, sp := range specials {
		if sp.SpecificDate != day.Date {
			continue
		}
		if sp.IsAvailable {
			day.Status = models.StatusSpecialOpen
			day.Label = "特別診療"
			day.TimeRanges = []string{utils.FormatClockRange(sp.StartTime, sp.EndTime)}
		} else {
			day.Status = models.StatusSpecialClosed
			day.Label = "休み"
		}
		return day
	}

	weekHasHoliday := oracle.HasHolidayInWeek(date)
	dow := date.Weekday()
	available, total := weekdayEntries(recurring, dow)

	switch dow {
	case time.Saturday:
		// 3. Recurring Saturday entries, else the default Saturday hours.
		if len(available) > 0 {
			day.Status = models.StatusSaturdayOpen
			day.Label = "土曜診療"
			day.TimeRanges = entryRanges(available)
			return day
		}
		if total > 0 {
			day.Status = models.StatusCustomClosed
			day.Label = "休診"
			return day
		}
		day.Status = models.StatusSaturdayOpen
		day.Label = "土曜診療"
		day.TimeRanges = blockRanges(templateBlocks[TemplateSaturday])
		return day

	case time.Thursday:
		// 4. Thursday opens only in a holiday week.
		if weekHasHoliday {
			day.Status = models.StatusThursdayHolidayOpen
			day.Label = "診療"
			day.TimeRanges = blockRanges(templateBlocks[TemplateFull])
			return day
		}
		day.Status = models.StatusBasicClosed
		day.Label = "定休日"
		return day

	case time.Sunday:
		// 5. The basic path never opens Sunday.
		day.Status = models.StatusBasicClosed
		day.Label = "休診"
		return day
	}

	// 6. Custom recurring entries for an ordinary weekday.
	if total > 0 {
		if len(available) == 0 {
			day.Status = models.StatusCustomClosed
			day.Label = "休診"
			return day
		}
		day.TimeRanges = entryRanges(available)
		if spansBothBlocks(available) {
			day.Status = models.StatusCustomFull
			day.Label = "診療"
		} else {
			day.Status = models.StatusCustomPartial
			day.Label = partialLabel(available[0].StartTime)
		}
		return day
	}

	// 7. Basic weekday template.
	blocks := BasicBlocks(dow, weekHasHoliday)
	if len(blocks) > 0 {
		day.TimeRanges = blockRanges(blocks)
		if blocksSpanBoth(blocks) {
			day.Status = models.StatusBasicFull
			day.Label = "診療"
		} else {
			day.Status = models.StatusBasicPartial
			day.Label = partialLabel(blocks[0].Start)
		}
		return day
	}

	// 8. Absolute fallback.
	day.Status = models.StatusBasicClosed
	day.Label = "休診"
	return day
}

// weekdayEntries filters the recurring set down to one weekday, returning the
// available entries sorted by start time and the total row count. Overlapping
// windows are reported as-is; the resolver does not merge or validate them.
func weekdayEntries(recurring []models.RecurringEntry, dow time.Weekday) ([]models.RecurringEntry, int) {
	var available []models.RecurringEntry
	total := 0
	for _, e := range recurring {
		if e.DayOfWeek != int(dow) {
			continue
		}
		total++
		if e.IsAvailable {
			available = append(available, e)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].StartTime < available[j].StartTime
	})
	return available, total
}

func entryRanges(entries []models.RecurringEntry) []string {
	ranges := make([]string, 0, len(entries))
	for _, e := range entries {
		ranges = append(ranges, utils.FormatClockRange(e.StartTime, e.EndTime))
	}
	return ranges
}

func blockRanges(blocks []models.Slot) []string {
	ranges := make([]string, 0, len(blocks))
	for _, b := range blocks {
		ranges = append(ranges, utils.FormatClockRange(b.Start, b.End))
	}
	return ranges
}

// afternoonBoundary splits the clinic day: a "full" day has a window starting
// before it and a window ending after it.
const afternoonBoundary = 14 * 60

func spansBothBlocks(entries []models.RecurringEntry) bool {
	hasMorning, hasAfternoon := false, false
	for _, e := range entries {
		s, _ := utils.ParseClock(e.StartTime)
		en, _ := utils.ParseClock(e.EndTime)
		if s < afternoonBoundary {
			hasMorning = true
		}
		if en > afternoonBoundary {
			hasAfternoon = true
		}
	}
	return hasMorning && hasAfternoon
}

func blocksSpanBoth(blocks []models.Slot) bool {
	hasMorning, hasAfternoon := false, false
	for _, b := range blocks {
		s, _ := utils.ParseClock(b.Start)
		en, _ := utils.ParseClock(b.End)
		if s < afternoonBoundary {
			hasMorning = true
		}
		if en > afternoonBoundary {
			hasAfternoon = true
		}
	}
	return hasMorning && hasAfternoon
}

func partialLabel(start string) string {
	s, ok := utils.ParseClock(start)
	if ok && s < afternoonBoundary {
		return "午前のみ"
	}
	return "午後のみ"
}
