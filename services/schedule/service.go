// File: services/schedule/service.go
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	memoRepo "clinicdesk/database/repository/memo"
	recurringRepo "clinicdesk/database/repository/recurring"
	specialRepo "clinicdesk/database/repository/special"
	"clinicdesk/models"
	"clinicdesk/services/holiday"
	"clinicdesk/services/rangeedit"
	"clinicdesk/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrEntryNotFound is returned when a recurring entry id matches nothing.
var ErrEntryNotFound = errors.New("schedule: entry not found")

// DefaultScheduleService wires the stores, the holiday oracle and the bulk
// manager into the ScheduleService the handlers consume.
type DefaultScheduleService struct {
	Recurring recurringRepo.RecurringRepository
	Special   specialRepo.SpecialRepository
	Memo      memoRepo.MemoRepository
	Oracle    holiday.Oracle
	Bulk      *BulkManager
	Cache     *redis.Client // nil disables month-projection caching
	MinHour   int
	MaxHour   int
}

func (s *DefaultScheduleService) ResolveDay(ctx context.Context, date string) (*models.ResolvedDay, *models.DailyMemo, error) {
	t, err := time.ParseInLocation(utils.DateLayout, date, time.Local)
	if err != nil {
		return nil, nil, fmt.Errorf("schedule.ResolveDay: invalid date %q", date)
	}

	var specials []models.SpecialEntry
	sp, err := s.Special.FirstByDate(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("schedule.ResolveDay: load override: %w", err)
	}
	if sp != nil {
		specials = append(specials, *sp)
	}

	recurring, err := s.Recurring.ListByScope(ctx, t.Year(), int(t.Month()), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("schedule.ResolveDay: load recurring: %w", err)
	}

	day := Resolve(t, specials, recurring, s.Oracle)
	if day.Status == models.StatusHolidayClosed && sp != nil {
		// Documented precedence: the holiday outranks a deliberate override.
		utils.GetLogger().Debug("special override shadowed by public holiday",
			zap.String("date", date))
	}

	memo, err := s.Memo.GetByDate(ctx, date)
	if err != nil {
		utils.GetLogger().Warn("memo lookup failed", zap.String("date", date), zap.Error(err))
		memo = nil
	}
	return &day, memo, nil
}

func (s *DefaultScheduleService) ProjectMonth(ctx context.Context, year, month int) (*models.MonthProjection, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("schedule.ProjectMonth: invalid month %d", month)
	}
	key := fmt.Sprintf("%s%04d-%02d", utils.MonthCachePrefix, year, month)

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var proj models.MonthProjection
			if err := json.Unmarshal([]byte(data), &proj); err == nil {
				return &proj, nil
			}
		}
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	specials, err := s.Special.ListByRange(ctx, first.Format(utils.DateLayout), last.Format(utils.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("schedule.ProjectMonth: load overrides: %w", err)
	}
	recurring, err := s.Recurring.ListByScope(ctx, year, month, nil)
	if err != nil {
		return nil, fmt.Errorf("schedule.ProjectMonth: load recurring: %w", err)
	}

	proj := ProjectMonth(year, time.Month(month), specials, recurring, s.Oracle)

	if s.Cache != nil {
		if data, err := json.Marshal(proj); err == nil {
			if err := s.Cache.Set(ctx, key, data, utils.MonthCacheTTL).Err(); err != nil {
				utils.GetLogger().Debug("month projection cache write failed", zap.Error(err))
			}
		}
	}
	return &proj, nil
}

func (s *DefaultScheduleService) ListRecurring(ctx context.Context, year, month int, dayOfWeek *int) ([]models.RecurringEntry, error) {
	return s.Recurring.ListByScope(ctx, year, month, dayOfWeek)
}

func (s *DefaultScheduleService) CreateRecurring(ctx context.Context, req models.RecurringEntryRequest) (*models.RecurringEntry, error) {
	if err := s.validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, fmt.Errorf("schedule.CreateRecurring: invalid dayOfWeek %d", req.DayOfWeek)
	}
	entry := models.RecurringEntry{
		Year:        req.Year,
		Month:       req.Month,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	}
	id, err := s.Recurring.Insert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("schedule.CreateRecurring: %w", err)
	}
	entry.ID = id
	s.invalidateMonth(ctx, req.Year, req.Month)
	return &entry, nil
}

func (s *DefaultScheduleService) UpdateRecurring(ctx context.Context, id string, patch models.RecurringPatch) error {
	existing, err := s.Recurring.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("schedule.UpdateRecurring: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("schedule.UpdateRecurring: %w: %s", ErrEntryNotFound, id)
	}

	start, end := existing.StartTime, existing.EndTime
	if patch.StartTime != nil {
		start = *patch.StartTime
	}
	if patch.EndTime != nil {
		end = *patch.EndTime
	}
	if err := s.validateWindow(start, end); err != nil {
		return err
	}
	if err := s.Recurring.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("schedule.UpdateRecurring: %w", err)
	}
	s.invalidateMonth(ctx, existing.Year, existing.Month)
	return nil
}

func (s *DefaultScheduleService) DeleteRecurring(ctx context.Context, id string) error {
	existing, err := s.Recurring.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("schedule.DeleteRecurring: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("schedule.DeleteRecurring: %w: %s", ErrEntryNotFound, id)
	}
	if err := s.Recurring.Delete(ctx, id); err != nil {
		return fmt.Errorf("schedule.DeleteRecurring: %w", err)
	}
	s.invalidateMonth(ctx, existing.Year, existing.Month)
	return nil
}

func (s *DefaultScheduleService) ApplyWeekdayTemplate(ctx context.Context, req models.WeekdayTemplateRequest) (models.BatchResult, error) {
	result, err := s.Bulk.ApplyWeekdayTemplate(ctx, req.Year, req.Month, req.DayOfWeek, req.Template)
	if err != nil {
		return result, err
	}
	s.refreshMonth(ctx, req.Year, req.Month)
	return result, nil
}

func (s *DefaultScheduleService) CloseWeekday(ctx context.Context, req models.CloseWeekdayRequest) (models.BatchResult, error) {
	result, err := s.Bulk.CloseWeekday(ctx, req.Year, req.Month, req.DayOfWeek)
	if err != nil {
		return result, err
	}
	s.refreshMonth(ctx, req.Year, req.Month)
	return result, nil
}

func (s *DefaultScheduleService) SetSaturday(ctx context.Context, req models.SaturdayRequest) (models.BatchResult, error) {
	var (
		result models.BatchResult
		err    error
	)
	if req.Open {
		result, err = s.Bulk.SetSaturdayOpen(ctx, req.Year, req.Month)
	} else {
		result, err = s.Bulk.SetSaturdayClosed(ctx, req.Year, req.Month)
	}
	if err != nil {
		return result, err
	}
	s.refreshMonth(ctx, req.Year, req.Month)
	return result, nil
}

func (s *DefaultScheduleService) ConvertDateToSpecial(ctx context.Context, req models.SpecialDayRequest) (models.BatchResult, error) {
	t, err := time.ParseInLocation(utils.DateLayout, req.Date, time.Local)
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("schedule.ConvertDateToSpecial: invalid date %q", req.Date)
	}
	for _, r := range req.Ranges {
		if err := s.validateWindow(r.Start, r.End); err != nil {
			return models.BatchResult{}, err
		}
	}
	result, err := s.Bulk.ConvertDateToSpecial(ctx, req.Date, req.Ranges, req.Available)
	if err != nil {
		return result, err
	}
	s.refreshMonth(ctx, t.Year(), int(t.Month()))
	return result, nil
}

func (s *DefaultScheduleService) RemoveSpecialOverride(ctx context.Context, date string) error {
	t, err := time.ParseInLocation(utils.DateLayout, date, time.Local)
	if err != nil {
		return fmt.Errorf("schedule.RemoveSpecialOverride: invalid date %q", date)
	}
	if err := s.Bulk.RemoveSpecialOverride(ctx, date); err != nil {
		return err
	}
	s.refreshMonth(ctx, t.Year(), int(t.Month()))
	return nil
}

func (s *DefaultScheduleService) GetMemo(ctx context.Context, date string) (*models.DailyMemo, error) {
	return s.Memo.GetByDate(ctx, date)
}

func (s *DefaultScheduleService) SaveMemo(ctx context.Context, date, memo string) error {
	return s.Memo.Upsert(ctx, date, memo)
}

func (s *DefaultScheduleService) DeleteMemo(ctx context.Context, date string) error {
	return s.Memo.DeleteByDate(ctx, date)
}

// validateWindow applies the range editor's numeric constraints to a window
// arriving through the single-entry path.
func (s *DefaultScheduleService) validateWindow(start, end string) error {
	sm, okS := utils.ParseClock(start)
	em, okE := utils.ParseClock(end)
	if !okS || !okE {
		return fmt.Errorf("schedule: malformed time window %q-%q", start, end)
	}
	return rangeedit.ValidateWindow(sm, em, s.MinHour, s.MaxHour)
}

func (s *DefaultScheduleService) invalidateMonth(ctx context.Context, year, month int) {
	if s.Cache == nil {
		return
	}
	key := fmt.Sprintf("%s%04d-%02d", utils.MonthCachePrefix, year, month)
	if err := s.Cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Debug("month projection cache invalidation failed", zap.Error(err))
	}
}

// refreshMonth drops the cached projection and recomputes it from a fresh
// fetch, so the next render sees the post-mutation store state.
func (s *DefaultScheduleService) refreshMonth(ctx context.Context, year, month int) {
	s.invalidateMonth(ctx, year, month)
	if _, err := s.ProjectMonth(ctx, year, month); err != nil {
		utils.GetLogger().Warn("month projection refresh failed",
			zap.Int("year", year), zap.Int("month", month), zap.Error(err))
	}
}
