package models

import "time"

// Post represents a published piece of content, optionally promoted from a
// conversation message. ForkCount is denormalized and written only inside
// the fork transaction.
type Post struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	UserID               uint      `json:"user_id" gorm:"index"`
	Title                string    `json:"title" gorm:"size:200"`
	Content              string    `json:"content" gorm:"type:text"`
	SourceConversationID *uint     `json:"source_conversation_id,omitempty" gorm:"index"`
	ConversationVisible  bool      `json:"conversation_visible" gorm:"default:false"`
	ForkCount            int       `json:"fork_count" gorm:"default:0"`
	Status               Status    `json:"status" gorm:"type:varchar(20);default:'active';index"`
	Tags                 []Tag     `json:"tags,omitempty" gorm:"many2many:post_tags"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title               string   `json:"title" validate:"required,min=1,max=200"`
	Content             string   `json:"content" validate:"required,min=1,max=20000"`
	ConversationVisible bool     `json:"conversation_visible"`
	Tags                []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title               string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content             string   `json:"content,omitempty" validate:"omitempty,min=1,max=20000"`
	ConversationVisible *bool    `json:"conversation_visible,omitempty"`
	Tags                []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}
