package handlers

import (
	"net/http"

	"github.com/convoforge/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles view/share tracking for posts
type AnalyticsHandler struct {
	analyticsRepository repositories.AnalyticsRepository
	postRepository      repositories.PostRepository
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsRepo repositories.AnalyticsRepository, postRepo repositories.PostRepository) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsRepository: analyticsRepo,
		postRepository:      postRepo,
	}
}

// RegisterAnalyticsRoutes registers analytics-related routes
func (h *AnalyticsHandler) RegisterAnalyticsRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/view", h.RecordView)
	g.POST("/posts/:post_id/share", h.RecordShare)
	g.GET("/posts/:post_id/stats", h.GetPostStats)
}

// RecordView records one view of a post
func (h *AnalyticsHandler) RecordView(c echo.Context) error {
	postID, err := h.activePost(c)
	if err != nil {
		return err
	}
	if err := h.analyticsRepository.RecordView(c.Request().Context(), postID, actorID(c)); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RecordShare records one share of a post
func (h *AnalyticsHandler) RecordShare(c echo.Context) error {
	postID, err := h.activePost(c)
	if err != nil {
		return err
	}
	if err := h.analyticsRepository.RecordShare(c.Request().Context(), postID, actorID(c)); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetPostStats returns a post's view/share counters
func (h *AnalyticsHandler) GetPostStats(c echo.Context) error {
	postID, err := h.activePost(c)
	if err != nil {
		return err
	}
	stats, err := h.analyticsRepository.GetPostStats(c.Request().Context(), postID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) activePost(c echo.Context) (uint, error) {
	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return 0, err
	}
	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return 0, domainError(err)
	}
	if !post.Status.IsActive() {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return postID, nil
}
