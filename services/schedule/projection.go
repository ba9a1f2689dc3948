// File: services/schedule/projection.go
package schedule

import (
	"time"

	"clinicdesk/models"
	"clinicdesk/services/holiday"
	"clinicdesk/utils"
)

// ProjectMonth folds every date of a month through Resolve and partitions the
// results into calendar buckets. No rules live here beyond the resolver's.
func ProjectMonth(year int, month time.Month, specials []models.SpecialEntry, recurring []models.RecurringEntry, oracle holiday.Oracle) models.MonthProjection {
	proj := models.MonthProjection{
		Year:    year,
		Month:   int(month),
		Days:    make(map[string]models.ResolvedDay),
		Summary: make(map[models.Bucket]int),
	}

	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.Local); d.Month() == month; d = d.AddDate(0, 0, 1) {
		day := Resolve(d, specials, recurring, oracle)
		proj.Days[d.Format(utils.DateLayout)] = day
		proj.Summary[day.Status.Bucket()]++
	}
	return proj
}
