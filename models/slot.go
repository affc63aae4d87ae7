package models

import "time"

// SlotStatus is the availability state of a timeslot.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// Slot represents one bookable (provider, date, time) unit.
// BookedBy and BookedAt are set if and only if Status is SlotBooked.
type Slot struct {
	ID           string       `bson:"id" json:"id"`
	ProviderID   string       `bson:"providerId" json:"providerId"`
	ProviderKind ProviderKind `bson:"providerKind" json:"providerKind"`
	Date         string       `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time         string       `bson:"time" json:"time"` // "HH:MM"
	Status       SlotStatus   `bson:"status" json:"status"`
	BookedBy     string       `bson:"bookedBy,omitempty" json:"bookedBy,omitempty"`
	BookedAt     *time.Time   `bson:"bookedAt,omitempty" json:"bookedAt,omitempty"`
}

// SlotSelector identifies the target of an acquisition attempt: by slot id,
// by (provider, date, time), or by (date, time) alone for auto-match.
type SlotSelector struct {
	SlotID       string
	ProviderID   string
	ProviderKind ProviderKind
	Date         string
	Time         string
}

// SlotFilter narrows an availability query. Zero-value fields are ignored.
type SlotFilter struct {
	ProviderID    string
	ProviderKind  ProviderKind
	Date          string
	Time          string
	OnlyAvailable bool
}
