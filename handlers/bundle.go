// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Day/month queries and single-entry editing.
	GetDayHandler          gin.HandlerFunc
	GetMonthHandler        gin.HandlerFunc
	ListRecurringHandler   gin.HandlerFunc
	CreateRecurringHandler gin.HandlerFunc
	UpdateRecurringHandler gin.HandlerFunc
	DeleteRecurringHandler gin.HandlerFunc

	// Bulk intents.
	ApplyWeekdayTemplateHandler gin.HandlerFunc
	CloseWeekdayHandler         gin.HandlerFunc
	SetSaturdayHandler          gin.HandlerFunc
	ConvertSpecialHandler       gin.HandlerFunc
	RemoveSpecialHandler        gin.HandlerFunc

	// Memos.
	GetMemoHandler    gin.HandlerFunc
	SaveMemoHandler   gin.HandlerFunc
	DeleteMemoHandler gin.HandlerFunc
}
