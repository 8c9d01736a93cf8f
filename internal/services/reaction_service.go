package services

import (
	"errors"
	"fmt"

	"github.com/convoforge/backend/internal/apperr"
	"github.com/convoforge/backend/internal/models"
	"github.com/convoforge/backend/internal/repositories"
)

// ToggleOutcome names what a reaction toggle did.
type ToggleOutcome string

const (
	ToggleCreated ToggleOutcome = "created"
	ToggleUpdated ToggleOutcome = "updated"
	ToggleRemoved ToggleOutcome = "removed"
)

// ToggleResult describes the outcome of one toggle call. Reaction is nil
// when the outcome is ToggleRemoved.
type ToggleResult struct {
	Outcome  ToggleOutcome    `json:"outcome"`
	Reaction *models.Reaction `json:"reaction,omitempty"`
}

// ReactionSummary is a target's reaction counts plus the caller's own kind.
type ReactionSummary struct {
	Counts map[models.ReactionKind]int64 `json:"counts"`
	Mine   *models.ReactionKind          `json:"mine,omitempty"`
}

// ReactionService decides, for one (actor, target, kind) call, whether to
// insert, overwrite, or remove the stored reaction. After any call the
// (actor, target) pair holds zero or one row; the storage-layer unique
// index backs that up under concurrent calls.
type ReactionService struct {
	reactions repositories.ReactionRepository
	posts     repositories.PostRepository
	comments  repositories.CommentRepository
}

// NewReactionService creates a new ReactionService
func NewReactionService(reactionRepo repositories.ReactionRepository, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *ReactionService {
	return &ReactionService{
		reactions: reactionRepo,
		posts:     postRepo,
		comments:  commentRepo,
	}
}

// Toggle applies the actor's requested kind to the target and reports which
// of created/updated/removed happened.
func (s *ReactionService) Toggle(actorID uint, targetType string, targetID uint, kind models.ReactionKind) (*ToggleResult, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown reaction kind %q", apperr.ErrValidation, kind)
	}

	ownerID, err := s.reactableOwner(targetType, targetID)
	if err != nil {
		return nil, err
	}
	if IsOwner(actorID, ownerID) {
		return nil, fmt.Errorf("%w: cannot react to own content", apperr.ErrInvalidOperation)
	}

	return s.toggle(actorID, targetType, targetID, kind, true)
}

// toggle runs one read-decide-write pass. When the insert loses a race to a
// concurrent call from the same actor, the unique index rejects it; one
// re-read re-decides against the row that won.
func (s *ReactionService) toggle(actorID uint, targetType string, targetID uint, kind models.ReactionKind, retryOnConflict bool) (*ToggleResult, error) {
	existing, err := s.reactions.GetReaction(actorID, targetType, targetID)
	switch {
	case err == nil && existing.Kind == kind:
		if err := s.reactions.DeleteReaction(existing.ID); err != nil {
			return nil, err
		}
		return &ToggleResult{Outcome: ToggleRemoved}, nil

	case err == nil:
		if err := s.reactions.UpdateReactionKind(existing.ID, kind); err != nil {
			return nil, err
		}
		existing.Kind = kind
		return &ToggleResult{Outcome: ToggleUpdated, Reaction: existing}, nil

	case errors.Is(err, apperr.ErrNotFound):
		reaction := &models.Reaction{
			UserID:     actorID,
			TargetType: targetType,
			TargetID:   targetID,
			Kind:       kind,
		}
		createErr := s.reactions.CreateReaction(reaction)
		if createErr == nil {
			return &ToggleResult{Outcome: ToggleCreated, Reaction: reaction}, nil
		}
		if errors.Is(createErr, apperr.ErrDuplicate) && retryOnConflict {
			return s.toggle(actorID, targetType, targetID, kind, false)
		}
		return nil, createErr

	default:
		return nil, err
	}
}

// Summary returns a target's reaction counts by kind and the caller's
// current reaction, if any.
func (s *ReactionService) Summary(actorID uint, targetType string, targetID uint) (*ReactionSummary, error) {
	if _, err := s.reactableOwner(targetType, targetID); err != nil {
		return nil, err
	}

	counts, err := s.reactions.CountReactionsByKind(targetType, targetID)
	if err != nil {
		return nil, err
	}

	summary := &ReactionSummary{Counts: counts}
	if mine, err := s.reactions.GetReaction(actorID, targetType, targetID); err == nil {
		summary.Mine = &mine.Kind
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	return summary, nil
}

// reactableOwner loads the target and returns its owner, treating unknown
// target types as validation failures and non-active targets as missing.
func (s *ReactionService) reactableOwner(targetType string, targetID uint) (uint, error) {
	switch targetType {
	case models.TargetTypePost:
		post, err := s.posts.GetPostByID(targetID)
		if err != nil {
			return 0, err
		}
		if !TargetIsActive(post.Status) {
			return 0, fmt.Errorf("%w: post %d", apperr.ErrNotFound, targetID)
		}
		return post.UserID, nil

	case models.TargetTypeComment:
		comment, err := s.comments.GetCommentByID(targetID)
		if err != nil {
			return 0, err
		}
		if !TargetIsActive(comment.Status) {
			return 0, fmt.Errorf("%w: comment %d", apperr.ErrNotFound, targetID)
		}
		return comment.UserID, nil

	default:
		return 0, fmt.Errorf("%w: unknown target type %q", apperr.ErrValidation, targetType)
	}
}
