// File: handlers/assessment.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulace/models"
	"soulace/services/assessment"
	"soulace/utils"
)

// AssessmentHandler serves psychometric self-assessment endpoints.
type AssessmentHandler struct {
	Service assessment.AssessmentService
	Logger  *zap.Logger
}

// NewAssessmentHandler constructs an AssessmentHandler.
func NewAssessmentHandler(svc assessment.AssessmentService, logger *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{Service: svc, Logger: logger}
}

// SubmitHandler handles POST /api/assessments.
func (h *AssessmentHandler) SubmitHandler(c *gin.Context) {
	var req struct {
		Instrument string `json:"instrument" binding:"required"`
		Answers    []int  `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid assessment payload: "+err.Error())
		return
	}

	result, err := h.Service.Submit(c.Request.Context(), c.GetString("userID"), models.Instrument(req.Instrument), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, assessment.ErrUnknownInstrument):
			utils.JSONError(c, http.StatusBadRequest, "unknown_instrument", err.Error())
		case errors.Is(err, assessment.ErrInvalidAnswers):
			utils.JSONError(c, http.StatusBadRequest, "invalid_answers", err.Error())
		default:
			h.Logger.Error("failed to submit assessment", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

// HistoryHandler handles GET /api/assessments.
func (h *AssessmentHandler) HistoryHandler(c *gin.Context) {
	results, err := h.Service.History(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.Error("failed to fetch assessment history", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessments": results})
}
