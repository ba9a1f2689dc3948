// File: services/schedule/interface.go
package schedule

import (
	"context"

	"clinicdesk/models"
)

// ScheduleService is the availability engine exposed to the HTTP layer.
type ScheduleService interface {
	// Queries.
	ResolveDay(ctx context.Context, date string) (*models.ResolvedDay, *models.DailyMemo, error)
	ProjectMonth(ctx context.Context, year, month int) (*models.MonthProjection, error)
	ListRecurring(ctx context.Context, year, month int, dayOfWeek *int) ([]models.RecurringEntry, error)

	// Single-entry path (fed by the range editor).
	CreateRecurring(ctx context.Context, req models.RecurringEntryRequest) (*models.RecurringEntry, error)
	UpdateRecurring(ctx context.Context, id string, patch models.RecurringPatch) error
	DeleteRecurring(ctx context.Context, id string) error

	// Bulk intents.
	ApplyWeekdayTemplate(ctx context.Context, req models.WeekdayTemplateRequest) (models.BatchResult, error)
	CloseWeekday(ctx context.Context, req models.CloseWeekdayRequest) (models.BatchResult, error)
	SetSaturday(ctx context.Context, req models.SaturdayRequest) (models.BatchResult, error)
	ConvertDateToSpecial(ctx context.Context, req models.SpecialDayRequest) (models.BatchResult, error)
	RemoveSpecialOverride(ctx context.Context, date string) error

	// Memos.
	GetMemo(ctx context.Context, date string) (*models.DailyMemo, error)
	SaveMemo(ctx context.Context, date, memo string) error
	DeleteMemo(ctx context.Context, date string) error
}
