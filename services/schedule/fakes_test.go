// File: services/schedule/fakes_test.go
package schedule

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"clinicdesk/models"
)

// fakeOracle answers holiday lookups from a fixed date set.
type fakeOracle struct {
	holidays map[string]string // "2006-01-02" -> name
}

func (f *fakeOracle) IsHoliday(t time.Time) bool {
	_, ok := f.holidays[t.Format("2006-01-02")]
	return ok
}

func (f *fakeOracle) Name(t time.Time) (string, bool) {
	name, ok := f.holidays[t.Format("2006-01-02")]
	return name, ok
}

func (f *fakeOracle) HasHolidayInWeek(t time.Time) bool {
	sunday := t.AddDate(0, 0, -int(t.Weekday()))
	for i := 0; i < 7; i++ {
		if f.IsHoliday(sunday.AddDate(0, 0, i)) {
			return true
		}
	}
	return false
}

// fakeRecurringRepo is an in-memory RecurringRepository. Inserts or updates
// touching a start time listed in failStarts fail, to simulate partial write
// failures during a bulk sequence.
type fakeRecurringRepo struct {
	mu         sync.Mutex
	entries    map[string]models.RecurringEntry
	failStarts map[string]bool
	nextID     int
}

func newFakeRecurringRepo() *fakeRecurringRepo {
	return &fakeRecurringRepo{
		entries:    make(map[string]models.RecurringEntry),
		failStarts: make(map[string]bool),
	}
}

func (r *fakeRecurringRepo) ListByScope(_ context.Context, year, month int, dayOfWeek *int) ([]models.RecurringEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.RecurringEntry
	for _, e := range r.entries {
		if e.Year != year || e.Month != month {
			continue
		}
		if dayOfWeek != nil && e.DayOfWeek != *dayOfWeek {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (r *fakeRecurringRepo) GetByID(_ context.Context, id string) (*models.RecurringEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *fakeRecurringRepo) Insert(_ context.Context, entry models.RecurringEntry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failStarts[entry.StartTime] {
		return "", fmt.Errorf("fake insert failure at %s", entry.StartTime)
	}
	r.nextID++
	entry.ID = fmt.Sprintf("rec-%d", r.nextID)
	entry.CreatedAt = time.Now()
	r.entries[entry.ID] = entry
	return entry.ID, nil
}

func (r *fakeRecurringRepo) Update(_ context.Context, id string, patch models.RecurringPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("fake: entry %s not found", id)
	}
	if r.failStarts[e.StartTime] {
		return fmt.Errorf("fake update failure at %s", e.StartTime)
	}
	if patch.StartTime != nil {
		e.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		e.EndTime = *patch.EndTime
	}
	if patch.IsAvailable != nil {
		e.IsAvailable = *patch.IsAvailable
	}
	r.entries[id] = e
	return nil
}

func (r *fakeRecurringRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return fmt.Errorf("fake: entry %s not found", id)
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeRecurringRepo) availableStarts(year, month, dow int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var starts []string
	for _, e := range r.entries {
		if e.Year == year && e.Month == month && e.DayOfWeek == dow && e.IsAvailable {
			starts = append(starts, e.StartTime)
		}
	}
	sort.Strings(starts)
	return starts
}

// fakeSpecialRepo is an in-memory SpecialRepository.
type fakeSpecialRepo struct {
	mu      sync.Mutex
	entries []models.SpecialEntry
	nextID  int
	failAll bool
}

func newFakeSpecialRepo() *fakeSpecialRepo {
	return &fakeSpecialRepo{}
}

func (r *fakeSpecialRepo) ListByRange(_ context.Context, from, to string) ([]models.SpecialEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SpecialEntry
	for _, e := range r.entries {
		if e.SpecificDate >= from && e.SpecificDate <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeSpecialRepo) FirstByDate(_ context.Context, date string) (*models.SpecialEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.SpecificDate == date {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeSpecialRepo) Insert(_ context.Context, entry models.SpecialEntry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return "", fmt.Errorf("fake special insert failure")
	}
	r.nextID++
	entry.ID = fmt.Sprintf("sp-%d", r.nextID)
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, entry)
	return entry.ID, nil
}

func (r *fakeSpecialRepo) UpdateAvailability(_ context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.ID == id {
			r.entries[i].IsAvailable = available
			return nil
		}
	}
	return fmt.Errorf("fake: special %s not found", id)
}

func (r *fakeSpecialRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("fake: special %s not found", id)
}

func (r *fakeSpecialRepo) DeleteByDate(_ context.Context, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []models.SpecialEntry
	var removed int64
	for _, e := range r.entries {
		if e.SpecificDate == date {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return removed, nil
}

// fakeMemoRepo is an in-memory MemoRepository.
type fakeMemoRepo struct {
	mu    sync.Mutex
	memos map[string]models.DailyMemo
}

func newFakeMemoRepo() *fakeMemoRepo {
	return &fakeMemoRepo{memos: make(map[string]models.DailyMemo)}
}

func (r *fakeMemoRepo) GetByDate(_ context.Context, date string) (*models.DailyMemo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.memos[date]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeMemoRepo) Upsert(_ context.Context, date, memo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.memos[date] = models.DailyMemo{Date: date, Memo: memo, UpdatedAt: time.Now()}
	return nil
}

func (r *fakeMemoRepo) DeleteByDate(_ context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.memos, date)
	return nil
}
