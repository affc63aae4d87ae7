// File: services/booking/book.go
package booking

import (
	"context"
	"fmt"
	"time"

	"soulace/models"

	"go.uber.org/zap"
)

const defaultSessionType = "individual"

func validateBookingRequest(req models.BookingRequest) error {
	if req.RequesterID == "" {
		return fmt.Errorf("%w: missing requester identity", ErrBadRequest)
	}
	if req.SlotID == "" {
		// Without an explicit slot the request must carry the coordinates.
		if req.Date == "" || req.Time == "" {
			return fmt.Errorf("%w: date and time are required", ErrBadRequest)
		}
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			return fmt.Errorf("%w: invalid date %q", ErrBadRequest, req.Date)
		}
		if _, err := time.Parse("15:04", req.Time); err != nil {
			return fmt.Errorf("%w: invalid time %q", ErrBadRequest, req.Time)
		}
	}
	if req.ProviderKind != "" && !models.ValidProviderKind(req.ProviderKind) {
		return fmt.Errorf("%w: unknown provider kind %q", ErrBadRequest, req.ProviderKind)
	}
	return nil
}

// Book implements the three booking strategies as one
// compare-and-set-then-record protocol. Resolution order: explicit slot id,
// then explicit provider+time, then auto-match across all providers. The
// ledger insert is strictly sequenced after, and conditioned on, acquisition
// success, so a failed acquisition never leaves partial effects.
func (e *DefaultBookingEngine) Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	sessionType := req.SessionType
	if sessionType == "" {
		sessionType = defaultSessionType
	}
	now := time.Now().UTC()

	var (
		slot *models.Slot
		err  error
	)
	switch {
	case req.SlotID != "":
		slot, err = e.Slots.TryAcquire(ctx, models.SlotSelector{SlotID: req.SlotID}, req.RequesterID, now)
		if err != nil {
			return nil, fmt.Errorf("acquire by slot id: %w", err)
		}
		if slot == nil {
			// Distinguish a slot that never existed from one that was taken.
			existing, lookupErr := e.Slots.GetByID(ctx, req.SlotID)
			if lookupErr == nil && existing == nil {
				return nil, ErrSlotNotFound
			}
			return nil, ErrSlotUnavailable
		}
	case req.ProviderID != "":
		sel := models.SlotSelector{
			ProviderID:   req.ProviderID,
			ProviderKind: req.ProviderKind,
			Date:         req.Date,
			Time:         req.Time,
		}
		slot, err = e.Slots.TryAcquire(ctx, sel, req.RequesterID, now)
		if err != nil {
			return nil, fmt.Errorf("acquire by provider and time: %w", err)
		}
		if slot == nil {
			return nil, ErrSlotUnavailable
		}
	default:
		sel := models.SlotSelector{
			ProviderKind: req.ProviderKind,
			Date:         req.Date,
			Time:         req.Time,
		}
		slot, err = e.Slots.TryAcquire(ctx, sel, req.RequesterID, now)
		if err != nil {
			return nil, fmt.Errorf("auto-match acquire: %w", err)
		}
		if slot == nil {
			return nil, ErrNoAvailableSlots
		}
	}

	// The acquired slot's own provider/date/time are authoritative, not the
	// caller's claimed values.
	bk, err := e.Ledger.Create(ctx, *slot, req.RequesterID, sessionType, req.Concerns, now)
	if err != nil {
		// The slot stays booked with no ledger row. Alertable; a
		// reconciliation sweep has to pick it up.
		e.logger.Error("booking ledger insert failed after slot acquisition",
			zap.String("slotId", slot.ID),
			zap.String("providerId", slot.ProviderID),
			zap.String("requesterId", req.RequesterID),
			zap.String("date", slot.Date),
			zap.String("time", slot.Time),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: slot %s acquired but ledger insert failed: %v", ErrInconsistentState, slot.ID, err)
	}

	e.logger.Info("booking confirmed",
		zap.String("bookingId", bk.ID),
		zap.String("slotId", bk.SlotID),
		zap.String("providerId", bk.ProviderID),
		zap.String("requesterId", bk.RequesterID),
	)
	return bk, nil
}
