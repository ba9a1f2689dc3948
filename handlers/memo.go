// File: handlers/memo.go
package handlers

import (
	"net/http"

	"clinicdesk/models"
	"clinicdesk/services/schedule"

	"github.com/gin-gonic/gin"
)

// MemoHandler serves the per-date free-text memos.
type MemoHandler struct {
	Service schedule.ScheduleService
}

// NewMemoHandler constructs a MemoHandler.
func NewMemoHandler(svc schedule.ScheduleService) *MemoHandler {
	return &MemoHandler{Service: svc}
}

func (h *MemoHandler) GetMemoHandler(c *gin.Context) {
	date := c.Param("date")
	memo, err := h.Service.GetMemo(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch memo", "message": err.Error()})
		return
	}
	if memo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No memo for date"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"memo": memo})
}

func (h *MemoHandler) SaveMemoHandler(c *gin.Context) {
	date := c.Param("date")

	var req models.MemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if err := h.Service.SaveMemo(c.Request.Context(), date, req.Memo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save memo", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Memo saved"})
}

func (h *MemoHandler) DeleteMemoHandler(c *gin.Context) {
	date := c.Param("date")
	if err := h.Service.DeleteMemo(c.Request.Context(), date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete memo", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Memo deleted"})
}
