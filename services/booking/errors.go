package booking

import "errors"

// Booking outcomes are typed, expected values; none of them crash the
// handling layer. ErrInconsistentState is the one alertable condition.
var (
	// ErrSlotUnavailable: the requested slot or provider+time is not
	// currently available. A routine contention outcome, not a fault.
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrNoAvailableSlots: auto-match found nothing for the date/time.
	ErrNoAvailableSlots = errors.New("no available slots")

	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotNotFound    = errors.New("slot not found")

	// ErrUnauthorized: cancellation attempted by a non-owner without
	// privilege.
	ErrUnauthorized = errors.New("not authorized")

	ErrAlreadyCancelled = errors.New("booking already cancelled")

	ErrBadRequest = errors.New("bad request")

	// ErrInconsistentState: slot acquisition succeeded but the ledger insert
	// failed, leaving a booked slot with no booking row. Must be surfaced
	// loudly; a reconciliation sweep is the mitigation.
	ErrInconsistentState = errors.New("inconsistent booking state")
)
