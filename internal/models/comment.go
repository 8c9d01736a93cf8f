package models

import "time"

// Comment represents a comment on a post. ParentID points at another
// comment on the same post; nesting depth is unbounded.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index"`
	UserID    uint      `json:"user_id" gorm:"index"`
	ParentID  *uint     `json:"parent_id,omitempty" gorm:"index"`
	Content   string    `json:"content" gorm:"type:text"`
	Status    Status    `json:"status" gorm:"type:varchar(20);default:'active';index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=2000"`
	ParentID *uint  `json:"parent_id,omitempty"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// CommentNode is a comment with its replies resolved.
type CommentNode struct {
	Comment
	Replies []*CommentNode `json:"replies"`
}

// BuildCommentTree assembles the reply tree from a flat, creation-ordered
// list in a single pass over a map, never by recursive loading. Replies
// whose parent is missing from the list (soft-deleted) surface at the top
// level rather than disappearing.
func BuildCommentTree(comments []Comment) []*CommentNode {
	nodes := make(map[uint]*CommentNode, len(comments))
	ordered := make([]*CommentNode, 0, len(comments))
	for i := range comments {
		n := &CommentNode{Comment: comments[i], Replies: []*CommentNode{}}
		nodes[n.ID] = n
		ordered = append(ordered, n)
	}

	roots := make([]*CommentNode, 0, len(ordered))
	for _, n := range ordered {
		if n.ParentID != nil {
			if parent, ok := nodes[*n.ParentID]; ok {
				parent.Replies = append(parent.Replies, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}
