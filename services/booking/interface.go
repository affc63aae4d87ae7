package booking

import (
	"context"

	bookingRepo "soulace/database/repository/booking"
	providerRepo "soulace/database/repository/provider"
	slotRepo "soulace/database/repository/slot"
	"soulace/models"
	"soulace/utils"

	"go.uber.org/zap"
)

// BookingEngine spans the slot store and the booking ledger. It is the only
// component that writes to both, and it holds no persistent state of its own.
type BookingEngine interface {
	// Book resolves the request to a slot (explicit slot id, explicit
	// provider+time, or auto-match), acquires it atomically and records the
	// booking.
	Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error)

	// Cancel marks the booking cancelled and releases its slot. Only the
	// booking's own requester, or a privileged caller, may cancel.
	Cancel(ctx context.Context, bookingID, requesterID string, isPrivileged bool) error

	// ListAvailability is a pure read used to render choices before booking.
	ListAvailability(ctx context.Context, providerID string, kind models.ProviderKind, date string) ([]models.Slot, error)

	// ListBookings returns the requester's bookings annotated with provider
	// reference data.
	ListBookings(ctx context.Context, requesterID string) ([]models.BookingView, error)
}

// DefaultBookingEngine implements BookingEngine.
type DefaultBookingEngine struct {
	Slots     slotRepo.SlotRepository
	Ledger    bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository

	logger *zap.Logger
}

// NewDefaultBookingEngine wires the engine with explicit store handles.
func NewDefaultBookingEngine(
	slots slotRepo.SlotRepository,
	ledger bookingRepo.BookingRepository,
	providers providerRepo.ProviderRepository,
) *DefaultBookingEngine {
	return &DefaultBookingEngine{
		Slots:     slots,
		Ledger:    ledger,
		Providers: providers,
		logger:    utils.GetLogger(),
	}
}
