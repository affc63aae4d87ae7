package models

import "time"

// MoodEntry is one logged mood for a user.
type MoodEntry struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Mood      string    `bson:"mood" json:"mood"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// SentimentSummary aggregates a user's mood log into sentiment buckets.
type SentimentSummary struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}
