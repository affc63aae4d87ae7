// File: services/booking/availability.go
package booking

import (
	"context"
	"fmt"

	"soulace/models"

	"go.uber.org/zap"
)

// ListAvailability is a pure read via the slot store; no side effects.
func (e *DefaultBookingEngine) ListAvailability(ctx context.Context, providerID string, kind models.ProviderKind, date string) ([]models.Slot, error) {
	if kind != "" && !models.ValidProviderKind(kind) {
		return nil, fmt.Errorf("%w: unknown provider kind %q", ErrBadRequest, kind)
	}
	filter := models.SlotFilter{
		ProviderID:    providerID,
		ProviderKind:  kind,
		Date:          date,
		OnlyAvailable: true,
	}
	slots, err := e.Slots.FindAvailable(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return slots, nil
}

// ListBookings annotates each booking with provider display data looked up
// from the reference repo. A missing provider leaves the annotation blank
// rather than failing the whole listing.
func (e *DefaultBookingEngine) ListBookings(ctx context.Context, requesterID string) ([]models.BookingView, error) {
	bookings, err := e.Ledger.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, bk := range bookings {
		view := models.BookingView{Booking: bk}
		provider, err := e.Providers.GetByID(ctx, bk.ProviderID)
		if err != nil {
			e.logger.Warn("provider lookup failed while annotating bookings",
				zap.String("providerId", bk.ProviderID), zap.Error(err))
		} else if provider != nil {
			view.ProviderName = provider.Name
			view.ProviderSpecialty = provider.Specialty
		}
		views = append(views, view)
	}
	return views, nil
}
