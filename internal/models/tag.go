package models

import (
	"strings"
	"time"
)

// Tag is a normalized label attached to posts via the post_tags join table.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeTagName lowercases and trims a raw tag, collapsing inner
// whitespace to single hyphens. Returns "" for tags that normalize away.
func NormalizeTagName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	return strings.Join(strings.Fields(name), "-")
}
