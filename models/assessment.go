package models

import "time"

// Instrument names a supported psychometric questionnaire.
type Instrument string

const (
	InstrumentGAD7  Instrument = "gad-7"
	InstrumentPHQ9  Instrument = "phq-9"
	InstrumentGHQ12 Instrument = "ghq-12"
)

// AssessmentResult is a scored questionnaire submission.
type AssessmentResult struct {
	ID         string     `bson:"id" json:"id"`
	UserID     string     `bson:"userId" json:"userId"`
	Instrument Instrument `bson:"instrument" json:"instrument"`
	Answers    []int      `bson:"answers" json:"answers"`
	Score      int        `bson:"score" json:"score"`
	Severity   string     `bson:"severity" json:"severity"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
}
