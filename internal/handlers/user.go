package handlers

import (
	"net/http"

	"github.com/convoforge/backend/internal/models"
	"github.com/convoforge/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterProfileRoutes registers user profile routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/me", h.GetMe)
	g.PUT("/me", h.UpdateMe)
	g.GET("/users/:user_id", h.GetUser)
	g.GET("/users/search", h.SearchUsers)
}

// GetMe returns the authenticated user's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(actorID(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe updates the authenticated user's profile
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req models.UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(actorID(c))
	if err != nil {
		return domainError(err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if err := h.userRepository.UpdateUser(user); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetUser retrieves another user's profile
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return domainError(err)
	}
	if !user.Status.IsActive() {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, user)
}

// SearchUsers searches active users by name or email
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing search query")
	}

	users, err := h.userRepository.SearchUsers(query)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}
