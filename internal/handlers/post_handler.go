package handlers

import (
	"net/http"
	"strconv"

	"github.com/convoforge/backend/internal/models"
	"github.com/convoforge/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	tagRepository  repositories.TagRepository
	forkRepository repositories.ForkRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, tagRepo repositories.TagRepository, forkRepo repositories.ForkRepository) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		tagRepository:  tagRepo,
		forkRepository: forkRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetAllPosts)
	g.GET("/posts/:post_id", h.GetPost)
	g.PUT("/posts/:post_id", h.UpdatePost)
	g.DELETE("/posts/:post_id", h.DeletePost)
	g.GET("/posts/:post_id/forks", h.GetPostForks)
	g.GET("/users/:user_id/posts", h.GetPostsByUser)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tags, err := h.tagRepository.GetOrCreateTags(req.Tags)
	if err != nil {
		return domainError(err)
	}

	post := &models.Post{
		UserID:              actorID(c),
		Title:               req.Title,
		Content:             req.Content,
		ConversationVisible: req.ConversationVisible,
		Status:              models.StatusActive,
		Tags:                tags,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a single active post
func (h *PostHandler) GetPost(c echo.Context) error {
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
	return c.JSON(http.StatusOK, post)
}

// GetAllPosts retrieves active posts with pagination
func (h *PostHandler) GetAllPosts(c echo.Context) error {
	offset, limit := pagination(c)
	posts, err := h.postRepository.GetAllPosts(offset, limit)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPostsByUser retrieves a user's active posts
func (h *PostHandler) GetPostsByUser(c echo.Context) error {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		return err
	}
	offset, limit := pagination(c)
	posts, err := h.postRepository.GetPostsByUserID(userID, offset, limit)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// UpdatePost updates a post the caller owns
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
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
	if post.UserID != actorID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this post")
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.ConversationVisible != nil {
		post.ConversationVisible = *req.ConversationVisible
	}
	if err := h.postRepository.UpdatePost(post); err != nil {
		return domainError(err)
	}

	if req.Tags != nil {
		tags, err := h.tagRepository.GetOrCreateTags(req.Tags)
		if err != nil {
			return domainError(err)
		}
		if err := h.postRepository.ReplaceTags(post, tags); err != nil {
			return domainError(err)
		}
		post.Tags = tags
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost soft-deletes a post the caller owns
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return domainError(err)
	}
	if post.UserID != actorID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}
	if !post.Status.CanTransition(models.StatusDeleted) {
		return echo.NewHTTPError(http.StatusBadRequest, "Post is already deleted")
	}

	if err := h.postRepository.SetStatus(postID, models.StatusDeleted); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetPostForks retrieves a post's fork records
func (h *PostHandler) GetPostForks(c echo.Context) error {
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

	forks, err := h.forkRepository.GetForksByPostID(postID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"post_id":    postID,
		"fork_count": post.ForkCount,
		"forks":      forks,
	})
}

// pagination reads skip/limit query params with defaults
func pagination(c echo.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.QueryParam("skip"))
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
