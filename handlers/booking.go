// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulace/models"
	"soulace/services/booking"
	"soulace/utils"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Engine booking.BookingEngine
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(engine booking.BookingEngine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// mapBookingError translates engine outcomes into HTTP responses. The
// authorization message deliberately does not reveal whether the booking
// exists.
func (h *BookingHandler) mapBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, "slot_unavailable", "That slot was just taken. Pick another.")
	case errors.Is(err, booking.ErrNoAvailableSlots):
		utils.JSONError(c, http.StatusConflict, "no_available_slots", "No providers are available at that time. Try another time.")
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking_not_found", "Booking not found.")
	case errors.Is(err, booking.ErrSlotNotFound):
		utils.JSONError(c, http.StatusNotFound, "slot_not_found", "Slot not found.")
	case errors.Is(err, booking.ErrUnauthorized):
		utils.JSONError(c, http.StatusForbidden, "forbidden", "Permission denied.")
	case errors.Is(err, booking.ErrAlreadyCancelled):
		utils.JSONError(c, http.StatusConflict, "already_cancelled", "This booking was already cancelled.")
	case errors.Is(err, booking.ErrBadRequest):
		utils.JSONError(c, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, booking.ErrInconsistentState):
		h.Logger.Error("inconsistent booking state surfaced to handler", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "Booking could not be completed. Support has been notified.")
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "An unexpected error occurred.")
	}
}

// BookHandler handles POST /api/bookings.
func (h *BookingHandler) BookHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid booking payload: "+err.Error())
		return
	}
	// Identity always comes from the session, never the payload.
	req.RequesterID = c.GetString("userID")

	bk, err := h.Engine.Book(c.Request.Context(), req)
	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"bookingId":    bk.ID,
		"slotId":       bk.SlotID,
		"providerId":   bk.ProviderID,
		"providerKind": bk.ProviderKind,
		"date":         bk.Date,
		"time":         bk.Time,
		"status":       bk.Status,
	})
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	requesterID := c.GetString("userID")
	isPrivileged := c.GetString("role") == "admin"

	if err := h.Engine.Cancel(c.Request.Context(), bookingID, requesterID, isPrivileged); err != nil {
		h.mapBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	requesterID := c.GetString("userID")

	views, err := h.Engine.ListBookings(c.Request.Context(), requesterID)
	if err != nil {
		h.mapBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views})
}

// AvailabilityHandler handles GET /api/availability.
func (h *BookingHandler) AvailabilityHandler(c *gin.Context) {
	providerID := c.Query("providerId")
	kind := models.ProviderKind(c.Query("providerKind"))
	date := c.Query("date")

	slots, err := h.Engine.ListAvailability(c.Request.Context(), providerID, kind, date)
	if err != nil {
		h.mapBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
