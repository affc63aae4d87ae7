// File: handlers/wellness.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulace/services/wellness"
	"soulace/utils"
)

// WellnessHandler serves mood tracking and journaling endpoints.
type WellnessHandler struct {
	Service wellness.WellnessService
	Logger  *zap.Logger
}

// NewWellnessHandler constructs a WellnessHandler.
func NewWellnessHandler(svc wellness.WellnessService, logger *zap.Logger) *WellnessHandler {
	return &WellnessHandler{Service: svc, Logger: logger}
}

// LogMoodHandler handles POST /api/moods.
func (h *WellnessHandler) LogMoodHandler(c *gin.Context) {
	var req struct {
		Mood string `json:"mood" binding:"required"`
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid mood payload: "+err.Error())
		return
	}

	entry, err := h.Service.LogMood(c.Request.Context(), c.GetString("userID"), req.Mood, req.Note)
	if err != nil {
		if errors.Is(err, wellness.ErrUnknownMood) {
			utils.JSONError(c, http.StatusBadRequest, "unknown_mood", err.Error())
			return
		}
		h.Logger.Error("failed to log mood", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// MoodHistoryHandler handles GET /api/moods.
func (h *WellnessHandler) MoodHistoryHandler(c *gin.Context) {
	entries, err := h.Service.MoodHistory(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.Error("failed to fetch mood history", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"moods": entries})
}

// MoodSummaryHandler handles GET /api/moods/summary.
func (h *WellnessHandler) MoodSummaryHandler(c *gin.Context) {
	summary, err := h.Service.SentimentSummary(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.Error("failed to compute sentiment summary", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// WriteJournalHandler handles POST /api/journal.
func (h *WellnessHandler) WriteJournalHandler(c *gin.Context) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid journal payload: "+err.Error())
		return
	}

	entry, err := h.Service.WriteEntry(c.Request.Context(), c.GetString("userID"), req.Title, req.Content)
	if err != nil {
		h.Logger.Error("failed to write journal entry", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListJournalHandler handles GET /api/journal.
func (h *WellnessHandler) ListJournalHandler(c *gin.Context) {
	entries, err := h.Service.ListEntries(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.Error("failed to list journal entries", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// DeleteJournalHandler handles DELETE /api/journal/:id.
func (h *WellnessHandler) DeleteJournalHandler(c *gin.Context) {
	err := h.Service.DeleteEntry(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, wellness.ErrEntryNotFound) {
			utils.JSONError(c, http.StatusNotFound, "entry_not_found", "Journal entry not found.")
			return
		}
		h.Logger.Error("failed to delete journal entry", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
