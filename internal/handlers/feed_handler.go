package handlers

import (
	"net/http"

	"github.com/convoforge/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles the home feed
type FeedHandler struct {
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, followRepo repositories.FollowRepository) *FeedHandler {
	return &FeedHandler{
		postRepository:   postRepo,
		followRepository: followRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns recent active posts from the users the caller follows
func (h *FeedHandler) GetFeed(c echo.Context) error {
	followingIDs, err := h.followRepository.GetFollowingIDs(actorID(c))
	if err != nil {
		return domainError(err)
	}

	offset, limit := pagination(c)
	posts, err := h.postRepository.GetPostsByUserIDs(followingIDs, offset, limit)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, posts)
}
