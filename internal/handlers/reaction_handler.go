package handlers

import (
	"net/http"

	"github.com/convoforge/backend/internal/models"
	"github.com/convoforge/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ReactionHandler handles HTTP requests related to reactions
type ReactionHandler struct {
	reactionService *services.ReactionService
}

// NewReactionHandler creates a new ReactionHandler
func NewReactionHandler(reactionService *services.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionService: reactionService}
}

// RegisterReactionRoutes registers reaction-related routes
func (h *ReactionHandler) RegisterReactionRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/reactions", h.TogglePostReaction)
	g.POST("/comments/:comment_id/reactions", h.ToggleCommentReaction)
	g.GET("/posts/:post_id/reactions", h.GetPostReactions)
	g.GET("/comments/:comment_id/reactions", h.GetCommentReactions)
}

// TogglePostReaction toggles the caller's reaction on a post
func (h *ReactionHandler) TogglePostReaction(c echo.Context) error {
	return h.toggle(c, models.TargetTypePost, "post_id")
}

// ToggleCommentReaction toggles the caller's reaction on a comment
func (h *ReactionHandler) ToggleCommentReaction(c echo.Context) error {
	return h.toggle(c, models.TargetTypeComment, "comment_id")
}

// toggle runs the toggle engine and maps its outcome to a status code:
// created 201, updated 200, removed 200 with a null body.
func (h *ReactionHandler) toggle(c echo.Context, targetType, param string) error {
	targetID, err := parseUintParam(c, param)
	if err != nil {
		return err
	}

	var req models.ToggleReactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.reactionService.Toggle(actorID(c), targetType, targetID, models.ReactionKind(req.Kind))
	if err != nil {
		return domainError(err)
	}

	switch result.Outcome {
	case services.ToggleCreated:
		return c.JSON(http.StatusCreated, result.Reaction)
	case services.ToggleUpdated:
		return c.JSON(http.StatusOK, result.Reaction)
	default:
		return c.JSON(http.StatusOK, nil)
	}
}

// GetPostReactions returns a post's reaction counts and the caller's kind
func (h *ReactionHandler) GetPostReactions(c echo.Context) error {
	return h.summary(c, models.TargetTypePost, "post_id")
}

// GetCommentReactions returns a comment's reaction counts and the caller's kind
func (h *ReactionHandler) GetCommentReactions(c echo.Context) error {
	return h.summary(c, models.TargetTypeComment, "comment_id")
}

func (h *ReactionHandler) summary(c echo.Context, targetType, param string) error {
	targetID, err := parseUintParam(c, param)
	if err != nil {
		return err
	}

	summary, err := h.reactionService.Summary(actorID(c), targetType, targetID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
