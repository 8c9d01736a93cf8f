package handlers

import (
	"net/http"

	"github.com/convoforge/backend/internal/models"
	"github.com/convoforge/backend/internal/repositories"
	"github.com/convoforge/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ConversationHandler handles HTTP requests related to conversations,
// messages, and forking posts into new conversations
type ConversationHandler struct {
	conversationRepository repositories.ConversationRepository
	postRepository         repositories.PostRepository
	tagRepository          repositories.TagRepository
	forkService            *services.ForkService
}

// NewConversationHandler creates a new ConversationHandler
func NewConversationHandler(conversationRepo repositories.ConversationRepository, postRepo repositories.PostRepository, tagRepo repositories.TagRepository, forkService *services.ForkService) *ConversationHandler {
	return &ConversationHandler{
		conversationRepository: conversationRepo,
		postRepository:         postRepo,
		tagRepository:          tagRepo,
		forkService:            forkService,
	}
}

// RegisterConversationRoutes registers conversation-related routes
func (h *ConversationHandler) RegisterConversationRoutes(g *echo.Group) {
	g.POST("/conversations", h.CreateConversation)
	g.GET("/conversations", h.GetMyConversations)
	g.GET("/conversations/:conversation_id", h.GetConversation)
	g.POST("/conversations/:conversation_id/archive", h.ArchiveConversation)
	g.POST("/conversations/:conversation_id/restore", h.RestoreConversation)
	g.POST("/conversations/:conversation_id/messages", h.AppendMessage)
	g.POST("/messages/:message_id/promote", h.PromoteMessage)
	g.POST("/posts/:post_id/fork", h.ForkPost)
}

// CreateConversation creates a new conversation owned by the caller
func (h *ConversationHandler) CreateConversation(c echo.Context) error {
	var req models.CreateConversationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	conversation := &models.Conversation{
		UserID:  actorID(c),
		Title:   req.Title,
		Visible: req.Visible,
		Status:  models.StatusActive,
	}
	if err := h.conversationRepository.CreateConversation(conversation); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, conversation)
}

// GetMyConversations lists the caller's conversations
func (h *ConversationHandler) GetMyConversations(c echo.Context) error {
	conversations, err := h.conversationRepository.GetConversationsByUserID(actorID(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, conversations)
}

// GetConversation retrieves a conversation with its messages. Private
// conversations 404 for anyone but their owner; deleted ones 404 for
// everyone.
func (h *ConversationHandler) GetConversation(c echo.Context) error {
	conversationID, err := parseUintParam(c, "conversation_id")
	if err != nil {
		return err
	}

	conversation, err := h.conversationRepository.GetConversationByID(conversationID)
	if err != nil {
		return domainError(err)
	}
	owner := services.IsOwner(actorID(c), conversation.UserID)
	if conversation.Status == models.StatusDeleted || (!owner && !conversation.Visible) {
		return echo.NewHTTPError(http.StatusNotFound, "Conversation not found")
	}

	messages, err := h.conversationRepository.GetMessagesByConversationID(conversationID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"conversation": conversation,
		"messages":     messages,
	})
}

// ArchiveConversation moves a conversation the caller owns to archived
func (h *ConversationHandler) ArchiveConversation(c echo.Context) error {
	return h.transition(c, models.StatusArchived)
}

// RestoreConversation moves an archived conversation back to active
func (h *ConversationHandler) RestoreConversation(c echo.Context) error {
	return h.transition(c, models.StatusActive)
}

func (h *ConversationHandler) transition(c echo.Context, next models.Status) error {
	conversationID, err := parseUintParam(c, "conversation_id")
	if err != nil {
		return err
	}

	conversation, err := h.conversationRepository.GetConversationByID(conversationID)
	if err != nil {
		return domainError(err)
	}
	if !services.IsOwner(actorID(c), conversation.UserID) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to modify this conversation")
	}
	if !conversation.Status.CanTransition(next) {
		return echo.NewHTTPError(http.StatusBadRequest, "Conversation cannot move from "+string(conversation.Status)+" to "+string(next))
	}

	if err := h.conversationRepository.SetStatus(conversationID, next); err != nil {
		return domainError(err)
	}
	conversation.Status = next
	return c.JSON(http.StatusOK, conversation)
}

// AppendMessage appends a message to a conversation the caller owns.
// Archived conversations reject writes.
func (h *ConversationHandler) AppendMessage(c echo.Context) error {
	conversationID, err := parseUintParam(c, "conversation_id")
	if err != nil {
		return err
	}

	var req models.AppendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	conversation, err := h.conversationRepository.GetConversationByID(conversationID)
	if err != nil {
		return domainError(err)
	}
	if !services.IsOwner(actorID(c), conversation.UserID) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to write to this conversation")
	}
	if !conversation.Status.IsActive() {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot write to an archived conversation")
	}

	message := &models.Message{
		ConversationID: conversationID,
		Role:           req.Role,
		Content:        req.Content,
		BlogCandidate:  req.BlogCandidate,
	}
	if err := h.conversationRepository.AppendMessage(message); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, message)
}

// PromoteMessage turns a blog-candidate message into a post whose source
// conversation is the one the message belongs to
func (h *ConversationHandler) PromoteMessage(c echo.Context) error {
	messageID, err := parseUintParam(c, "message_id")
	if err != nil {
		return err
	}

	var req models.PromoteMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.conversationRepository.GetMessageByID(messageID)
	if err != nil {
		return domainError(err)
	}
	conversation, err := h.conversationRepository.GetConversationByID(message.ConversationID)
	if err != nil {
		return domainError(err)
	}
	if !services.IsOwner(actorID(c), conversation.UserID) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to promote this message")
	}
	if !message.BlogCandidate {
		return echo.NewHTTPError(http.StatusBadRequest, "Message is not marked as a blog candidate")
	}

	tags, err := h.tagRepository.GetOrCreateTags(req.Tags)
	if err != nil {
		return domainError(err)
	}

	post := &models.Post{
		UserID:               actorID(c),
		Title:                req.Title,
		Content:              message.Content,
		SourceConversationID: &conversation.ID,
		ConversationVisible:  req.ConversationVisible,
		Status:               models.StatusActive,
		Tags:                 tags,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// ForkPost forks a post into a brand-new conversation owned by the caller.
// Succeeds with 200 by convention, echoing the possibly-downgraded
// include flag.
func (h *ConversationHandler) ForkPost(c echo.Context) error {
	postID, err := parseUintParam(c, "post_id")
	if err != nil {
		return err
	}

	var req models.ForkPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	result, err := h.forkService.Fork(actorID(c), postID, req.IncludeOriginalConversation)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, models.ForkPostResponse{
		ConversationID:              result.ConversationID,
		Title:                       result.Title,
		IncludeOriginalConversation: result.IncludedOriginal,
	})
}
