// File: handlers/bulk.go
package handlers

import (
	"errors"
	"net/http"

	"clinicdesk/models"
	"clinicdesk/services/schedule"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BulkHandler serves the coarse-grained schedule intents. The bulk mutations
// are best-effort; a 200 with a non-empty "failed" list means some slot
// writes did not land and the weekday is a mix of old and new windows.
type BulkHandler struct {
	Service schedule.ScheduleService
}

// NewBulkHandler constructs a BulkHandler.
func NewBulkHandler(svc schedule.ScheduleService) *BulkHandler {
	return &BulkHandler{Service: svc}
}

func bulkStatus(err error) int {
	switch {
	case errors.Is(err, schedule.ErrOperationInFlight):
		return http.StatusConflict
	case errors.Is(err, schedule.ErrUnknownTemplate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeBatch(c *gin.Context, result models.BatchResult) {
	if !result.Ok() {
		utils.GetLogger().Warn("bulk mutation finished with failures",
			zap.Int("succeeded", len(result.Succeeded)),
			zap.Int("failed", len(result.Failed)))
	}
	c.JSON(http.StatusOK, result)
}

func (h *BulkHandler) ApplyWeekdayTemplateHandler(c *gin.Context) {
	var req models.WeekdayTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	result, err := h.Service.ApplyWeekdayTemplate(c.Request.Context(), req)
	if err != nil {
		c.JSON(bulkStatus(err), gin.H{"error": "Failed to apply template", "message": err.Error()})
		return
	}
	writeBatch(c, result)
}

func (h *BulkHandler) CloseWeekdayHandler(c *gin.Context) {
	var req models.CloseWeekdayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	result, err := h.Service.CloseWeekday(c.Request.Context(), req)
	if err != nil {
		c.JSON(bulkStatus(err), gin.H{"error": "Failed to close weekday", "message": err.Error()})
		return
	}
	writeBatch(c, result)
}

func (h *BulkHandler) SetSaturdayHandler(c *gin.Context) {
	var req models.SaturdayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	result, err := h.Service.SetSaturday(c.Request.Context(), req)
	if err != nil {
		c.JSON(bulkStatus(err), gin.H{"error": "Failed to set Saturday", "message": err.Error()})
		return
	}
	writeBatch(c, result)
}

func (h *BulkHandler) ConvertSpecialHandler(c *gin.Context) {
	var req models.SpecialDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	result, err := h.Service.ConvertDateToSpecial(c.Request.Context(), req)
	if err != nil {
		c.JSON(bulkStatus(err), gin.H{"error": "Failed to convert date", "message": err.Error()})
		return
	}
	writeBatch(c, result)
}

func (h *BulkHandler) RemoveSpecialHandler(c *gin.Context) {
	date := c.Param("date")
	if err := h.Service.RemoveSpecialOverride(c.Request.Context(), date); err != nil {
		c.JSON(bulkStatus(err), gin.H{"error": "Failed to remove override", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Override removed"})
}
