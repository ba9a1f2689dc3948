// File: handlers/schedule.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"clinicdesk/models"
	"clinicdesk/services/rangeedit"
	"clinicdesk/services/schedule"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves day/month queries and the single-entry CRUD path.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func (h *ScheduleHandler) GetDayHandler(c *gin.Context) {
	date := c.Param("date")
	day, memo, err := h.Service.ResolveDay(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to resolve day", err.Error())
		return
	}
	resp := gin.H{"day": day}
	if memo != nil {
		resp["memo"] = memo
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ScheduleHandler) GetMonthHandler(c *gin.Context) {
	year, errY := strconv.Atoi(c.Param("year"))
	month, errM := strconv.Atoi(c.Param("month"))
	if errY != nil || errM != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid month path", c.Param("year")+"/"+c.Param("month"))
		return
	}
	proj, err := h.Service.ProjectMonth(c.Request.Context(), year, month)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to project month", err.Error())
		return
	}
	c.JSON(http.StatusOK, proj)
}

func (h *ScheduleHandler) ListRecurringHandler(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing year/month query", "")
		return
	}
	var dayOfWeek *int
	if dowStr := c.Query("dayOfWeek"); dowStr != "" {
		dow, err := strconv.Atoi(dowStr)
		if err != nil || dow < 0 || dow > 6 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid dayOfWeek", dowStr)
			return
		}
		dayOfWeek = &dow
	}
	entries, err := h.Service.ListRecurring(c.Request.Context(), year, month, dayOfWeek)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list entries", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *ScheduleHandler) CreateRecurringHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.RecurringEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid recurring entry request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	entry, err := h.Service.CreateRecurring(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, rangeedit.ErrInvalidWindow) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": "Failed to create entry", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h *ScheduleHandler) UpdateRecurringHandler(c *gin.Context) {
	id := c.Param("id")

	var patch models.RecurringPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if err := h.Service.UpdateRecurring(c.Request.Context(), id, patch); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, rangeedit.ErrInvalidWindow):
			status = http.StatusBadRequest
		case errors.Is(err, schedule.ErrEntryNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Failed to update entry", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry updated"})
}

func (h *ScheduleHandler) DeleteRecurringHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteRecurring(c.Request.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, schedule.ErrEntryNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Failed to delete entry", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
