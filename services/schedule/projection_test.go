// File: services/schedule/projection_test.go
package schedule

import (
	"testing"
	"time"

	"clinicdesk/models"
)

func TestProjectMonthBucketCounts(t *testing.T) {
	// June 2025 has no public holidays: 5 Sundays, 5 Mondays, 4 of every
	// other weekday.
	proj := ProjectMonth(2025, time.June, nil, nil, noHolidays())

	if len(proj.Days) != 30 {
		t.Fatalf("want 30 days, got %d", len(proj.Days))
	}
	wantSummary := map[models.Bucket]int{
		models.BucketOpenFull:     12, // Tue, Wed, Fri
		models.BucketOpenPartial:  5,  // Mondays
		models.BucketOpenSaturday: 4,
		models.BucketClosed:       9, // Sundays and Thursdays
	}
	for bucket, want := range wantSummary {
		if got := proj.Summary[bucket]; got != want {
			t.Errorf("bucket %s: want %d, got %d", bucket, want, got)
		}
	}

	total := 0
	for _, n := range proj.Summary {
		total += n
	}
	if total != 30 {
		t.Errorf("summary must partition the month, got total %d", total)
	}
}

func TestProjectMonthSpecialShiftsBucket(t *testing.T) {
	specials := []models.SpecialEntry{{
		SpecificDate: "2025-06-03", // an otherwise full-open Tuesday
		IsAvailable:  false,
	}}
	proj := ProjectMonth(2025, time.June, specials, nil, noHolidays())

	if proj.Summary[models.BucketOpenFull] != 11 {
		t.Errorf("open_full: want 11, got %d", proj.Summary[models.BucketOpenFull])
	}
	if proj.Summary[models.BucketClosed] != 10 {
		t.Errorf("closed: want 10, got %d", proj.Summary[models.BucketClosed])
	}
	if got := proj.Days["2025-06-03"].Status; got != models.StatusSpecialClosed {
		t.Errorf("overridden day status: got %s", got)
	}
}

func TestProjectMonthHolidayWeekThursday(t *testing.T) {
	// 建国記念の日 2025-02-11 (Tuesday) puts Thursday 02-13 into a holiday week.
	oracle := &fakeOracle{holidays: map[string]string{"2025-02-11": "建国記念の日"}}
	proj := ProjectMonth(2025, time.February, nil, nil, oracle)

	if got := proj.Days["2025-02-11"].Status; got != models.StatusHolidayClosed {
		t.Errorf("holiday status: got %s", got)
	}
	if got := proj.Days["2025-02-13"].Status; got != models.StatusThursdayHolidayOpen {
		t.Errorf("holiday-week Thursday status: got %s", got)
	}
	if got := proj.Days["2025-02-06"].Status; got != models.StatusBasicClosed {
		t.Errorf("plain Thursday status: got %s", got)
	}
}
