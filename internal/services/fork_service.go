package services

import (
	"fmt"
	"time"

	"github.com/convoforge/backend/internal/apperr"
	"github.com/convoforge/backend/internal/models"
	"github.com/convoforge/backend/internal/repositories"
)

// ForkResult is what a successful fork reports back.
type ForkResult struct {
	ConversationID   uint
	Title            string
	IncludedOriginal bool
}

// ForkService materializes a new conversation from a post. The new
// conversation, its seed messages, the fork record, and the post's
// fork_count increment commit as one transaction inside the fork
// repository; a failure at any step leaves no trace.
type ForkService struct {
	posts         repositories.PostRepository
	conversations repositories.ConversationRepository
	forks         repositories.ForkRepository
}

// NewForkService creates a new ForkService
func NewForkService(postRepo repositories.PostRepository, conversationRepo repositories.ConversationRepository, forkRepo repositories.ForkRepository) *ForkService {
	return &ForkService{
		posts:         postRepo,
		conversations: conversationRepo,
		forks:         forkRepo,
	}
}

// Fork creates a new conversation seeded from the post. When the caller
// asks for the original conversation but it is private (or the post has
// none), the fork still succeeds with the flag downgraded to false; the
// record and the result both carry the downgraded value.
func (s *ForkService) Fork(actorID, postID uint, includeOriginal bool) (*ForkResult, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if !TargetIsActive(post.Status) {
		return nil, fmt.Errorf("%w: post %d", apperr.ErrNotFound, postID)
	}

	include := includeOriginal &&
		IsSourceConversationVisible(post) &&
		post.SourceConversationID != nil

	conversation := &models.Conversation{
		UserID:           actorID,
		Title:            fmt.Sprintf("Fork of: %s", post.Title),
		ForkedFromPostID: &post.ID,
		Status:           models.StatusActive,
	}

	messages := []models.Message{framingMessage(post)}
	if include {
		history, err := s.conversations.GetMessagesByConversationID(*post.SourceConversationID)
		if err != nil {
			return nil, err
		}
		for _, m := range history {
			messages = append(messages, models.Message{Role: m.Role, Content: m.Content})
		}
	}

	record := &models.ConversationFork{
		UserID:           actorID,
		PostID:           post.ID,
		IncludedOriginal: include,
		ForkedAt:         time.Now(),
		Status:           models.StatusActive,
	}

	if err := s.forks.CreateFork(conversation, messages, record); err != nil {
		return nil, err
	}

	return &ForkResult{
		ConversationID:   conversation.ID,
		Title:            conversation.Title,
		IncludedOriginal: include,
	}, nil
}

// framingMessage builds the system message that opens every fork,
// embedding the source post's title and content as context.
func framingMessage(post *models.Post) models.Message {
	return models.Message{
		Role: models.RoleSystem,
		Content: fmt.Sprintf(
			"This conversation is a fork of the post %q.\n\n%s",
			post.Title, post.Content,
		),
	}
}
