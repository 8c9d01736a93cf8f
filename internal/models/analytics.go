package models

import "time"

// Engagement event kinds
const (
	EngagementView  = "view"
	EngagementShare = "share"
)

// PostStats holds the denormalized view/share counters for a post,
// maintained in MongoDB with $inc updates.
type PostStats struct {
	PostID uint  `json:"post_id" bson:"post_id"`
	Views  int64 `json:"views" bson:"views"`
	Shares int64 `json:"shares" bson:"shares"`
}

// EngagementEvent is one raw view/share event, kept for later rollups.
type EngagementEvent struct {
	PostID     uint      `json:"post_id" bson:"post_id"`
	UserID     uint      `json:"user_id" bson:"user_id"`
	Kind       string    `json:"kind" bson:"kind"`
	OccurredAt time.Time `json:"occurred_at" bson:"occurred_at"`
}
