// File: handlers/provider.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	providerRepo "soulace/database/repository/provider"
	slotRepo "soulace/database/repository/slot"
	"soulace/models"
	"soulace/utils"
)

// ProviderHandler serves provider reference data and administrative slot
// setup.
type ProviderHandler struct {
	Providers providerRepo.ProviderRepository
	Slots     slotRepo.SlotRepository
	Logger    *zap.Logger
}

// NewProviderHandler constructs a ProviderHandler.
func NewProviderHandler(providers providerRepo.ProviderRepository, slots slotRepo.SlotRepository, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Providers: providers, Slots: slots, Logger: logger}
}

// ListProvidersHandler handles GET /api/providers.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	kind := models.ProviderKind(c.Query("kind"))
	if kind != "" && !models.ValidProviderKind(kind) {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "unknown provider kind")
		return
	}

	providers, err := h.Providers.List(c.Request.Context(), kind)
	if err != nil {
		h.Logger.Error("failed to list providers", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// SetupSlotsRequest is the payload for administrative slot creation.
type SetupSlotsRequest struct {
	Slots []struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	} `json:"slots" binding:"required"`
}

// SetupSlotsHandler handles PUT /api/providers/:id/slots. Slots are created
// available; provider id and kind come from the reference record, not the
// payload.
func (h *ProviderHandler) SetupSlotsHandler(c *gin.Context) {
	providerID := c.Param("id")

	provider, err := h.Providers.GetByID(c.Request.Context(), providerID)
	if err != nil {
		h.Logger.Error("failed to fetch provider", zap.String("providerId", providerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	if provider == nil {
		utils.JSONError(c, http.StatusNotFound, "provider_not_found", "Provider not found.")
		return
	}

	var req SetupSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid slots payload: "+err.Error())
		return
	}

	slots := make([]models.Slot, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, models.Slot{
			ProviderID:   provider.ID,
			ProviderKind: provider.Kind,
			Date:         s.Date,
			Time:         s.Time,
			Status:       models.SlotAvailable,
		})
	}

	ids, err := h.Slots.CreateMany(c.Request.Context(), slots)
	if err != nil {
		h.Logger.Error("failed to create slots", zap.String("providerId", providerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"slotIds": ids})
}
