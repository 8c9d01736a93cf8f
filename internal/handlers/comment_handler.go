package handlers

import (
	"net/http"

	"github.com/convoforge/backend/internal/models"
	"github.com/convoforge/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentThread)
	g.PUT("/comments/:comment_id", h.UpdateComment)
	g.DELETE("/comments/:comment_id", h.DeleteComment)
}

// CreateComment creates a new comment on a post, optionally as a reply
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return domainError(err)
	}
	if !post.Status.IsActive() {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	// A reply's parent must be an active comment on the same post.
	if req.ParentID != nil {
		parent, err := h.commentRepository.GetCommentByID(*req.ParentID)
		if err != nil {
			return domainError(err)
		}
		if parent.PostID != postID || !parent.Status.IsActive() {
			return echo.NewHTTPError(http.StatusBadRequest, "Parent comment does not belong to this post")
		}
	}

	comment := &models.Comment{
		PostID:   postID,
		UserID:   actorID(c),
		ParentID: req.ParentID,
		Content:  req.Content,
		Status:   models.StatusActive,
	}

	if err := h.commentRepository.CreateComment(comment); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetCommentThread retrieves a post's comments as a reply tree
func (h *CommentHandler) GetCommentThread(c echo.Context) error {
	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return domainError(err)
	}
	if !post.Status.IsActive() {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, models.BuildCommentTree(comments))
}

// UpdateComment updates a comment the caller owns
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	commentID, err := parseUintParam(c, "comment_id")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil {
		return domainError(err)
	}
	if !comment.Status.IsActive() {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	if comment.UserID != actorID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this comment")
	}

	comment.Content = req.Content
	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment soft-deletes a comment the caller owns
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := parseUintParam(c, "comment_id")
	if err != nil {
		return err
	}

	comment, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil {
		return domainError(err)
	}
	if comment.UserID != actorID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this comment")
	}
	if !comment.Status.CanTransition(models.StatusDeleted) {
		return echo.NewHTTPError(http.StatusBadRequest, "Comment is already deleted")
	}

	if err := h.commentRepository.SetStatus(commentID, models.StatusDeleted); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
