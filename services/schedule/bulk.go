// File: services/schedule/bulk.go
package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	recurringRepo "clinicdesk/database/repository/recurring"
	specialRepo "clinicdesk/database/repository/special"
	"clinicdesk/models"
	"clinicdesk/utils"

	"go.uber.org/zap"
)

// ErrOperationInFlight is returned when a schedule mutation is requested
// while another one is still settling.
var ErrOperationInFlight = errors.New("schedule: another schedule operation is in flight")

// ErrUnknownTemplate is returned for a template name outside the registry.
var ErrUnknownTemplate = errors.New("schedule: unknown template")

// BulkManager realizes coarse operator intents against a store whose only
// write primitive is a single row. Writes are issued strictly sequentially,
// one awaited at a time, with a short pacing delay between them; a failed
// write is logged and the loop continues. The result is best-effort, never
// transactional: BatchResult tells the caller exactly which slots landed.
//
// A single atomic in-flight flag serializes every mutation — bulk intents and
// single-entry toggles alike — so two interactions cannot interleave partial
// writes.
type BulkManager struct {
	Recurring     recurringRepo.RecurringRepository
	Special       specialRepo.SpecialRepository
	Pacing        time.Duration
	EnvelopeStart string // maximum working envelope, e.g. "09:00"
	EnvelopeEnd   string // e.g. "19:00"

	inFlight atomic.Bool
}

func (m *BulkManager) begin() error {
	if !m.inFlight.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	return nil
}

func (m *BulkManager) release() {
	m.inFlight.Store(false)
}

func (m *BulkManager) pause() {
	if m.Pacing > 0 {
		time.Sleep(m.Pacing)
	}
}

// ApplyWeekdayTemplate rebuilds one weekday of a month scope from a named
// template: every slot in the working envelope is disabled, then exactly the
// template's slots are enabled.
func (m *BulkManager) ApplyWeekdayTemplate(ctx context.Context, year, month, dow int, template string) (models.BatchResult, error) {
	blocks, ok := TemplateBlocks(template)
	if !ok {
		return models.BatchResult{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, template)
	}
	if err := m.begin(); err != nil {
		return models.BatchResult{}, err
	}
	defer m.release()
	return m.rebuildWeekday(ctx, year, month, dow, blocks)
}

// CloseWeekday disables every slot of the weekday's working envelope.
func (m *BulkManager) CloseWeekday(ctx context.Context, year, month, dow int) (models.BatchResult, error) {
	if err := m.begin(); err != nil {
		return models.BatchResult{}, err
	}
	defer m.release()
	return m.rebuildWeekday(ctx, year, month, dow, nil)
}

// SetSaturdayOpen restores the default Saturday hours for the month scope.
func (m *BulkManager) SetSaturdayOpen(ctx context.Context, year, month int) (models.BatchResult, error) {
	return m.ApplyWeekdayTemplate(ctx, year, month, int(time.Saturday), TemplateSaturday)
}

// SetSaturdayClosed disables every Saturday slot for the month scope.
func (m *BulkManager) SetSaturdayClosed(ctx context.Context, year, month int) (models.BatchResult, error) {
	return m.CloseWeekday(ctx, year, month, int(time.Saturday))
}

// ToggleEntry flips a single recurring entry. It shares the in-flight guard
// with the bulk intents so a toggle cannot race a running rebuild.
func (m *BulkManager) ToggleEntry(ctx context.Context, id string, available bool) error {
	if err := m.begin(); err != nil {
		return err
	}
	defer m.release()
	return m.Recurring.Update(ctx, id, models.RecurringPatch{IsAvailable: &available})
}

// ConvertDateToSpecial replaces any override rows for the date with the given
// single-date windows (or one explicit closed row when available is false).
func (m *BulkManager) ConvertDateToSpecial(ctx context.Context, date string, ranges []models.Slot, available bool) (models.BatchResult, error) {
	if available && len(ranges) == 0 {
		return models.BatchResult{}, fmt.Errorf("schedule.ConvertDateToSpecial: open override needs at least one range")
	}
	if err := m.begin(); err != nil {
		return models.BatchResult{}, err
	}
	defer m.release()

	logger := utils.GetLogger()
	var result models.BatchResult

	if _, err := m.Special.DeleteByDate(ctx, date); err != nil {
		// Stale rows only shadow the new first match; keep going.
		logger.Warn("failed to clear existing special rows",
			zap.String("date", date), zap.Error(err))
	}

	rows := ranges
	if !available {
		rows = []models.Slot{{}}
	}
	for _, slot := range rows {
		entry := models.SpecialEntry{
			SpecificDate: date,
			StartTime:    slot.Start,
			EndTime:      slot.End,
			IsAvailable:  available,
		}
		if _, err := m.Special.Insert(ctx, entry); err != nil {
			logger.Warn("special override write failed",
				zap.String("date", date),
				zap.String("start", slot.Start),
				zap.Error(err))
			result.Failed = append(result.Failed, slot)
		} else {
			result.Succeeded = append(result.Succeeded, slot)
		}
		m.pause()
	}
	return result, nil
}

// RemoveSpecialOverride deletes every override row for the date.
func (m *BulkManager) RemoveSpecialOverride(ctx context.Context, date string) error {
	if err := m.begin(); err != nil {
		return err
	}
	defer m.release()
	_, err := m.Special.DeleteByDate(ctx, date)
	return err
}

// rebuildWeekday runs the disable pass over the working envelope and then the
// enable pass for the wanted blocks. Once it starts it runs to completion;
// per-slot failures are collected, not propagated.
func (m *BulkManager) rebuildWeekday(ctx context.Context, year, month, dow int, blocks []models.Slot) (models.BatchResult, error) {
	logger := utils.GetLogger()
	var result models.BatchResult

	existing, err := m.Recurring.ListByScope(ctx, year, month, &dow)
	if err != nil {
		return result, fmt.Errorf("schedule.rebuildWeekday: list scope %d-%02d dow %d: %w", year, month, dow, err)
	}
	byStart := make(map[string]models.RecurringEntry, len(existing))
	for _, e := range existing {
		if _, ok := byStart[e.StartTime]; !ok {
			byStart[e.StartTime] = e
		}
	}

	record := func(slot models.Slot, err error, phase string) {
		if err != nil {
			logger.Warn("bulk slot write failed",
				zap.String("phase", phase),
				zap.Int("year", year),
				zap.Int("month", month),
				zap.Int("dayOfWeek", dow),
				zap.String("start", slot.Start),
				zap.Error(err))
			result.Failed = append(result.Failed, slot)
			return
		}
		result.Succeeded = append(result.Succeeded, slot)
	}

	// Disable pass: every slot of the maximum working envelope.
	for slot := range Slots(m.EnvelopeStart, m.EnvelopeEnd) {
		record(slot, m.writeSlot(ctx, year, month, dow, slot, false, byStart), "disable")
		m.pause()
	}

	// Enable pass: exactly the slots the template implies.
	for _, block := range blocks {
		for _, slot := range GenerateTimeSlots(block.Start, block.End) {
			record(slot, m.writeSlot(ctx, year, month, dow, slot, true, byStart), "enable")
			m.pause()
		}
	}
	return result, nil
}

// writeSlot updates the existing row for the slot's start time, or inserts a
// fresh one. byStart is kept current so the enable pass reuses rows the
// disable pass created.
func (m *BulkManager) writeSlot(ctx context.Context, year, month, dow int, slot models.Slot, available bool, byStart map[string]models.RecurringEntry) error {
	if e, ok := byStart[slot.Start]; ok {
		avail := available
		return m.Recurring.Update(ctx, e.ID, models.RecurringPatch{
			StartTime:   &slot.Start,
			EndTime:     &slot.End,
			IsAvailable: &avail,
		})
	}
	entry := models.RecurringEntry{
		Year:        year,
		Month:       month,
		DayOfWeek:   dow,
		StartTime:   slot.Start,
		EndTime:     slot.End,
		IsAvailable: available,
	}
	id, err := m.Recurring.Insert(ctx, entry)
	if err != nil {
		return err
	}
	entry.ID = id
	byStart[slot.Start] = entry
	return nil
}
