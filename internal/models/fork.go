package models

import "time"

// ConversationFork is the audit row for one fork event. The same user may
// fork the same post any number of times; each row points at an independent
// new conversation. Rows are archived, never hard-deleted.
type ConversationFork struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"index:idx_fork_actor_post"`
	PostID           uint      `json:"post_id" gorm:"index:idx_fork_actor_post;index"`
	ConversationID   uint      `json:"conversation_id" gorm:"index"`
	IncludedOriginal bool      `json:"included_original"`
	ForkedAt         time.Time `json:"forked_at"`
	Status           Status    `json:"status" gorm:"type:varchar(20);default:'active';index"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ForkPostRequest defines the request body for forking a post
type ForkPostRequest struct {
	IncludeOriginalConversation bool `json:"includeOriginalConversation"`
}

// ForkPostResponse is the payload returned on a successful fork
type ForkPostResponse struct {
	ConversationID              uint   `json:"conversationId"`
	Title                       string `json:"title"`
	IncludeOriginalConversation bool   `json:"includeOriginalConversation"`
}
