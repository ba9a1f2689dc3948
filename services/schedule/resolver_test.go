// File: services/schedule/resolver_test.go
package schedule

import (
	"testing"
	"time"

	"clinicdesk/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func noHolidays() *fakeOracle {
	return &fakeOracle{holidays: map[string]string{}}
}

func TestResolveBasicTuesdayFullOpen(t *testing.T) {
	day := Resolve(date(2025, time.June, 3), nil, nil, noHolidays())

	if day.Status != models.StatusBasicFull {
		t.Fatalf("want %s, got %s", models.StatusBasicFull, day.Status)
	}
	want := []string{"10:00～13:30", "15:00～19:00"}
	if len(day.TimeRanges) != 2 || day.TimeRanges[0] != want[0] || day.TimeRanges[1] != want[1] {
		t.Errorf("ranges: want %v, got %v", want, day.TimeRanges)
	}
}

func TestResolveMondayAfternoonOnly(t *testing.T) {
	day := Resolve(date(2025, time.June, 2), nil, nil, noHolidays())
	if day.Status != models.StatusBasicPartial {
		t.Fatalf("want %s, got %s", models.StatusBasicPartial, day.Status)
	}
	if day.Label != "午後のみ" {
		t.Errorf("label: want 午後のみ, got %s", day.Label)
	}
}

func TestResolveThursdaySwitchesOnHolidayWeek(t *testing.T) {
	oracle := &fakeOracle{holidays: map[string]string{"2025-06-09": "test holiday"}}

	// Thursday 2025-06-12 shares its week (Sun 06-08 .. Sat 06-14) with the holiday.
	open := Resolve(date(2025, time.June, 12), nil, nil, oracle)
	if open.Status != models.StatusThursdayHolidayOpen {
		t.Fatalf("holiday week: want %s, got %s", models.StatusThursdayHolidayOpen, open.Status)
	}
	if len(open.TimeRanges) != 2 {
		t.Errorf("holiday-week Thursday should run the full template, got %v", open.TimeRanges)
	}

	// Thursday 2025-06-05 has no holiday in its week.
	closed := Resolve(date(2025, time.June, 5), nil, nil, oracle)
	if closed.Status != models.StatusBasicClosed {
		t.Fatalf("plain week: want %s, got %s", models.StatusBasicClosed, closed.Status)
	}
	if closed.Label != "定休日" {
		t.Errorf("label: want 定休日, got %s", closed.Label)
	}
}

func TestResolveHolidayOutranksEverything(t *testing.T) {
	oracle := &fakeOracle{holidays: map[string]string{"2025-06-03": "test holiday"}}
	specials := []models.SpecialEntry{{
		SpecificDate: "2025-06-03",
		StartTime:    "10:00",
		EndTime:      "12:00",
		IsAvailable:  true,
	}}
	recurring := []models.RecurringEntry{{
		DayOfWeek: 2, StartTime: "10:00", EndTime: "13:30", IsAvailable: true,
	}}

	day := Resolve(date(2025, time.June, 3), specials, recurring, oracle)
	if day.Status != models.StatusHolidayClosed {
		t.Fatalf("want %s, got %s", models.StatusHolidayClosed, day.Status)
	}
	if day.Label != "祝日" {
		t.Errorf("label: want 祝日, got %s", day.Label)
	}
	if len(day.TimeRanges) != 0 {
		t.Errorf("holiday must carry no ranges, got %v", day.TimeRanges)
	}
}

func TestResolveSpecialOverrideBeatsRecurring(t *testing.T) {
	// 2025-01-08 is a Wednesday that would otherwise be full-open.
	specials := []models.SpecialEntry{{
		SpecificDate: "2025-01-08",
		IsAvailable:  false,
	}}
	day := Resolve(date(2025, time.January, 8), specials, nil, noHolidays())
	if day.Status != models.StatusSpecialClosed {
		t.Fatalf("want %s, got %s", models.StatusSpecialClosed, day.Status)
	}
	if day.Label != "休み" {
		t.Errorf("label: want 休み, got %s", day.Label)
	}
}

func TestResolveSpecialOpenSunday(t *testing.T) {
	// Sunday opens only through a special override.
	specials := []models.SpecialEntry{{
		SpecificDate: "2025-06-01",
		StartTime:    "09:00",
		EndTime:      "12:00",
		IsAvailable:  true,
	}}
	day := Resolve(date(2025, time.June, 1), specials, nil, noHolidays())
	if day.Status != models.StatusSpecialOpen {
		t.Fatalf("want %s, got %s", models.StatusSpecialOpen, day.Status)
	}
	if len(day.TimeRanges) != 1 || day.TimeRanges[0] != "09:00～12:00" {
		t.Errorf("ranges: got %v", day.TimeRanges)
	}
}

func TestResolveSpecialFirstMatchWins(t *testing.T) {
	specials := []models.SpecialEntry{
		{SpecificDate: "2025-06-03", StartTime: "09:00", EndTime: "11:00", IsAvailable: true},
		{SpecificDate: "2025-06-03", IsAvailable: false},
	}
	day := Resolve(date(2025, time.June, 3), specials, nil, noHolidays())
	if day.Status != models.StatusSpecialOpen {
		t.Fatalf("first special row must win, got %s", day.Status)
	}
}

func TestResolveSundayClosedByDefault(t *testing.T) {
	recurring := []models.RecurringEntry{{
		DayOfWeek: 0, StartTime: "09:00", EndTime: "12:00", IsAvailable: true,
	}}
	// Recurring Sunday data is ignored on the basic path.
	day := Resolve(date(2025, time.June, 1), nil, recurring, noHolidays())
	if day.Status != models.StatusBasicClosed {
		t.Fatalf("want %s, got %s", models.StatusBasicClosed, day.Status)
	}
}

func TestResolveSaturdayVariants(t *testing.T) {
	sat := date(2025, time.June, 7)

	t.Run("no entries falls back to default hours", func(t *testing.T) {
		day := Resolve(sat, nil, nil, noHolidays())
		if day.Status != models.StatusSaturdayOpen {
			t.Fatalf("want %s, got %s", models.StatusSaturdayOpen, day.Status)
		}
		want := []string{"09:00～12:30", "14:00～17:30"}
		if len(day.TimeRanges) != 2 || day.TimeRanges[0] != want[0] || day.TimeRanges[1] != want[1] {
			t.Errorf("ranges: want %v, got %v", want, day.TimeRanges)
		}
	})

	t.Run("available entries override the default", func(t *testing.T) {
		recurring := []models.RecurringEntry{
			{DayOfWeek: 6, StartTime: "10:00", EndTime: "12:00", IsAvailable: true},
		}
		day := Resolve(sat, nil, recurring, noHolidays())
		if day.Status != models.StatusSaturdayOpen {
			t.Fatalf("want %s, got %s", models.StatusSaturdayOpen, day.Status)
		}
		if len(day.TimeRanges) != 1 || day.TimeRanges[0] != "10:00～12:00" {
			t.Errorf("ranges: got %v", day.TimeRanges)
		}
	})

	t.Run("entries all unavailable close the day", func(t *testing.T) {
		recurring := []models.RecurringEntry{
			{DayOfWeek: 6, StartTime: "09:00", EndTime: "09:30", IsAvailable: false},
		}
		day := Resolve(sat, nil, recurring, noHolidays())
		if day.Status != models.StatusCustomClosed {
			t.Fatalf("want %s, got %s", models.StatusCustomClosed, day.Status)
		}
	})
}

func TestResolveCustomWeekdayClassification(t *testing.T) {
	wed := date(2025, time.June, 4)

	t.Run("morning and afternoon blocks classify as full", func(t *testing.T) {
		recurring := []models.RecurringEntry{
			{DayOfWeek: 3, StartTime: "10:00", EndTime: "12:00", IsAvailable: true},
			{DayOfWeek: 3, StartTime: "16:00", EndTime: "18:00", IsAvailable: true},
		}
		day := Resolve(wed, nil, recurring, noHolidays())
		if day.Status != models.StatusCustomFull {
			t.Fatalf("want %s, got %s", models.StatusCustomFull, day.Status)
		}
	})

	t.Run("morning only classifies as partial", func(t *testing.T) {
		recurring := []models.RecurringEntry{
			{DayOfWeek: 3, StartTime: "10:00", EndTime: "12:00", IsAvailable: true},
			{DayOfWeek: 3, StartTime: "16:00", EndTime: "18:00", IsAvailable: false},
		}
		day := Resolve(wed, nil, recurring, noHolidays())
		if day.Status != models.StatusCustomPartial {
			t.Fatalf("want %s, got %s", models.StatusCustomPartial, day.Status)
		}
		if day.Label != "午前のみ" {
			t.Errorf("label: want 午前のみ, got %s", day.Label)
		}
	})

	t.Run("all unavailable closes the day", func(t *testing.T) {
		recurring := []models.RecurringEntry{
			{DayOfWeek: 3, StartTime: "10:00", EndTime: "12:00", IsAvailable: false},
		}
		day := Resolve(wed, nil, recurring, noHolidays())
		if day.Status != models.StatusCustomClosed {
			t.Fatalf("want %s, got %s", models.StatusCustomClosed, day.Status)
		}
	})
}

func TestResolveIsTotal(t *testing.T) {
	// Every date over two months resolves to a valid status, even with
	// malformed source rows in the mix.
	recurring := []models.RecurringEntry{
		{DayOfWeek: 2, StartTime: "garbage", EndTime: "", IsAvailable: true},
	}
	oracle := &fakeOracle{holidays: map[string]string{"2025-07-21": "海の日"}}
	for d := date(2025, time.June, 1); d.Before(date(2025, time.August, 1)); d = d.AddDate(0, 0, 1) {
		day := Resolve(d, nil, recurring, oracle)
		if day.Status == "" {
			t.Fatalf("%s: empty status", d.Format("2006-01-02"))
		}
		if day.Label == "" {
			t.Fatalf("%s: empty label", d.Format("2006-01-02"))
		}
	}
}
