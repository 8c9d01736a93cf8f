package services

import "github.com/convoforge/backend/internal/models"

// Ownership and visibility guards. Pure predicates over already-loaded
// rows; they carry no state and perform no queries.

// IsOwner reports whether the acting user owns the target.
func IsOwner(actorID, ownerID uint) bool {
	return actorID == ownerID
}

// IsSourceConversationVisible reports whether a post's source conversation
// may be read by third parties.
func IsSourceConversationVisible(post *models.Post) bool {
	return post.ConversationVisible
}

// TargetIsActive reports whether a target is live (not soft-deleted).
func TargetIsActive(status models.Status) bool {
	return status.IsActive()
}
