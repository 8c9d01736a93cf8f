package handlers

import (
	"net/http"

	"github.com/convoforge/backend/internal/models"
	"github.com/convoforge/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// TagHandler handles HTTP requests related to tags
type TagHandler struct {
	tagRepository  repositories.TagRepository
	postRepository repositories.PostRepository
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagRepo repositories.TagRepository, postRepo repositories.PostRepository) *TagHandler {
	return &TagHandler{
		tagRepository:  tagRepo,
		postRepository: postRepo,
	}
}

// RegisterTagRoutes registers tag-related routes
func (h *TagHandler) RegisterTagRoutes(g *echo.Group) {
	g.GET("/tags", h.GetTags)
	g.GET("/tags/:name/posts", h.GetPostsByTag)
}

// GetTags lists all tags
func (h *TagHandler) GetTags(c echo.Context) error {
	tags, err := h.tagRepository.GetTags()
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, tags)
}

// GetPostsByTag lists active posts carrying a tag
func (h *TagHandler) GetPostsByTag(c echo.Context) error {
	name := models.NormalizeTagName(c.Param("name"))
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid tag name")
	}

	offset, limit := pagination(c)
	posts, err := h.postRepository.GetPostsByTag(name, offset, limit)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, posts)
}
