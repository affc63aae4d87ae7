package models

import "time"

// PostStatus is the moderation state of a forum post.
type PostStatus string

const (
	PostVisible PostStatus = "visible"
	PostFlagged PostStatus = "flagged"
	PostRemoved PostStatus = "removed"
)

// ForumPost is a peer-support post. Flagged posts are hidden from the public
// feed until a moderator decides.
type ForumPost struct {
	ID          string     `bson:"id" json:"id"`
	UserID      string     `bson:"userId" json:"-"`
	DisplayName string     `bson:"displayName" json:"displayName"`
	Body        string     `bson:"body" json:"body"`
	Status      PostStatus `bson:"status" json:"status"`
	ToxicScore  float64    `bson:"toxicScore" json:"-"`
	ToxicLabel  string     `bson:"toxicLabel,omitempty" json:"-"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}

// Verdict is the result of the external content classifier.
type Verdict struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}
