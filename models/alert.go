package models

import "time"

// CrisisAlert is the payload queued when a user shows signs of crisis.
type CrisisAlert struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Source   string    `json:"source"` // e.g. "assessment:phq-9"
	Detail   string    `json:"detail"`
	RaisedAt time.Time `json:"raisedAt"`
}
