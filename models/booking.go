package models

import "time"

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents a confirmed reservation consuming exactly one slot.
// Date, Time and provider fields are denormalized from the slot at creation
// time for query convenience.
type Booking struct {
	ID           string        `bson:"id" json:"id"`
	SlotID       string        `bson:"slotId" json:"slotId"`
	ProviderID   string        `bson:"providerId" json:"providerId"`
	ProviderKind ProviderKind  `bson:"providerKind" json:"providerKind"`
	RequesterID  string        `bson:"requesterId" json:"requesterId"`
	Date         string        `bson:"date" json:"date"`
	Time         string        `bson:"time" json:"time"`
	SessionType  string        `bson:"sessionType" json:"sessionType"`
	Concerns     string        `bson:"concerns,omitempty" json:"concerns,omitempty"`
	Status       BookingStatus `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	CancelledAt  *time.Time    `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
}

// BookingRequest is the request payload for booking a session. Exactly one of
// the three selection shapes is used: SlotID, ProviderID(+Kind)+Date+Time, or
// Date+Time alone for auto-match. The requester identity always comes from
// the authenticated session, never from the payload.
type BookingRequest struct {
	SlotID       string       `json:"slotId"`
	ProviderID   string       `json:"providerId"`
	ProviderKind ProviderKind `json:"providerKind"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	SessionType  string       `json:"sessionType"`
	Concerns     string       `json:"concerns"`

	// RequesterID is populated by the handler from the auth context.
	RequesterID string `json:"-"`
}

// BookingView is a booking annotated with provider reference data for display.
type BookingView struct {
	Booking
	ProviderName      string `json:"providerName,omitempty"`
	ProviderSpecialty string `json:"providerSpecialty,omitempty"`
}
