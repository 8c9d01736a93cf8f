package models

import "time"

// ReactionKind is the closed set of reactions a user can leave on content.
type ReactionKind string

const (
	ReactionUpvote     ReactionKind = "upvote"
	ReactionDownvote   ReactionKind = "downvote"
	ReactionHeart      ReactionKind = "heart"
	ReactionInsightful ReactionKind = "insightful"
	ReactionAccurate   ReactionKind = "accurate"
)

// Valid reports whether k is one of the known reaction kinds.
func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionUpvote, ReactionDownvote, ReactionHeart, ReactionInsightful, ReactionAccurate:
		return true
	}
	return false
}

// Reaction target types
const (
	TargetTypePost    = "post"
	TargetTypeComment = "comment"
)

// Reaction represents one user's reaction to a post or comment.
// The composite unique index guarantees at most one row per (user, target)
// pair; toggling the same kind again removes the row.
type Reaction struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	UserID     uint         `json:"user_id" gorm:"index;uniqueIndex:idx_actor_target"`
	TargetType string       `json:"target_type" gorm:"size:20;uniqueIndex:idx_actor_target"`
	TargetID   uint         `json:"target_id" gorm:"index;uniqueIndex:idx_actor_target"`
	Kind       ReactionKind `json:"kind" gorm:"size:20"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// ToggleReactionRequest defines the request body for toggling a reaction
type ToggleReactionRequest struct {
	Kind string `json:"kind" validate:"required,oneof=upvote downvote heart insightful accurate"`
}
