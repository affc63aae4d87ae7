// File: services/booking/cancel.go
package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Cancel transitions [booked, confirmed] back to [available, cancelled].
// The ledger update is the user-facing contract; the slot release that
// follows is best-effort cleanup and is never rolled back on failure.
func (e *DefaultBookingEngine) Cancel(ctx context.Context, bookingID, requesterID string, isPrivileged bool) error {
	bk, err := e.Ledger.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("lookup booking %s: %w", bookingID, err)
	}
	if bk == nil {
		return ErrBookingNotFound
	}

	if bk.RequesterID != requesterID && !isPrivileged {
		return ErrUnauthorized
	}

	cancelled, err := e.Ledger.Cancel(ctx, bookingID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}
	if cancelled == nil {
		// The booking exists but was no longer confirmed.
		return ErrAlreadyCancelled
	}

	if err := e.Slots.Release(ctx, cancelled.SlotID); err != nil {
		e.logger.Warn("slot release failed after cancellation",
			zap.String("bookingId", bookingID),
			zap.String("slotId", cancelled.SlotID),
			zap.Error(err),
		)
	}

	e.logger.Info("booking cancelled",
		zap.String("bookingId", bookingID),
		zap.String("slotId", cancelled.SlotID),
		zap.Bool("privileged", isPrivileged && requesterID != cancelled.RequesterID),
	)
	return nil
}
