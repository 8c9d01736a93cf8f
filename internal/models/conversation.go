package models

import "time"

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Conversation is an ordered sequence of messages owned by one user.
// ForkedFromPostID is set when the conversation was created by forking a
// post; Visible controls whether third parties may read it.
type Conversation struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"index"`
	Title            string    `json:"title" gorm:"size:200"`
	Visible          bool      `json:"visible" gorm:"default:false"`
	ForkedFromPostID *uint     `json:"forked_from_post_id,omitempty" gorm:"index"`
	Status           Status    `json:"status" gorm:"type:varchar(20);default:'active';index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Message belongs to exactly one conversation. Messages are ordered by
// creation time; BlogCandidate marks a message that may be promoted into
// a post.
type Message struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ConversationID uint      `json:"conversation_id" gorm:"index"`
	Role           string    `json:"role" gorm:"size:20"`
	Content        string    `json:"content" gorm:"type:text"`
	BlogCandidate  bool      `json:"blog_candidate" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateConversationRequest defines the request body for creating a conversation
type CreateConversationRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Visible bool   `json:"visible"`
}

// AppendMessageRequest defines the request body for appending a message
type AppendMessageRequest struct {
	Role          string `json:"role" validate:"required,oneof=user assistant system"`
	Content       string `json:"content" validate:"required,min=1"`
	BlogCandidate bool   `json:"blog_candidate"`
}

// PromoteMessageRequest defines the request body for promoting a
// blog-candidate message into a post.
type PromoteMessageRequest struct {
	Title               string   `json:"title" validate:"required,min=1,max=200"`
	ConversationVisible bool     `json:"conversation_visible"`
	Tags                []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}
