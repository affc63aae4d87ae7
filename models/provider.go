package models

// ProviderKind distinguishes the two kinds of bookable providers.
type ProviderKind string

const (
	KindTherapist ProviderKind = "therapist"
	KindProctor   ProviderKind = "proctor"
)

// ValidProviderKind reports whether k is a known provider kind.
func ValidProviderKind(k ProviderKind) bool {
	return k == KindTherapist || k == KindProctor
}

// Provider is immutable reference data: created administratively,
// never mutated by the booking flow.
type Provider struct {
	ID         string       `bson:"id" json:"id"`
	Name       string       `bson:"name" json:"name"`
	Kind       ProviderKind `bson:"kind" json:"kind"`
	Specialty  string       `bson:"specialty" json:"specialty"` // specialty or department
	Experience int          `bson:"experience" json:"experience"`
	Location   string       `bson:"location" json:"location"`
}
