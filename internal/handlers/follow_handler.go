package handlers

import (
	"errors"
	"net/http"

	"github.com/convoforge/backend/internal/apperr"
	"github.com/convoforge/backend/internal/models"
	"github.com/convoforge/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles HTTP requests related to follows
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:user_id/follow", h.FollowUser)
	g.DELETE("/users/:user_id/follow", h.UnfollowUser)
	g.GET("/users/:user_id/followers", h.GetFollowers)
	g.GET("/users/:user_id/following", h.GetFollowing)
	g.GET("/users/:user_id/follow-stats", h.GetFollowStats)
}

// FollowUser makes the caller follow another user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	followingID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}
	followerID := actorID(c)

	if followerID == followingID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	target, err := h.userRepository.GetUserByID(followingID)
	if err != nil {
		return domainError(err)
	}
	if !target.Status.IsActive() {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	already, err := h.followRepository.IsFollowing(followerID, followingID)
	if err != nil {
		return domainError(err)
	}
	if already {
		return echo.NewHTTPError(http.StatusConflict, "Already following this user")
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := h.followRepository.CreateFollow(follow); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, follow)
}

// UnfollowUser makes the caller unfollow a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	followingID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.followRepository.DeleteFollow(actorID(c), followingID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Not following this user")
		}
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetFollowers lists a user's followers
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	users, err := h.followRepository.GetFollowers(userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetFollowing lists the users a user follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	users, err := h.followRepository.GetFollowing(userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetFollowStats returns follower/following counts for a user
func (h *FollowHandler) GetFollowStats(c echo.Context) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	followers, err := h.followRepository.GetFollowersCount(userID)
	if err != nil {
		return domainError(err)
	}
	following, err := h.followRepository.GetFollowingCount(userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":         userID,
		"followers_count": followers,
		"following_count": following,
	})
}
