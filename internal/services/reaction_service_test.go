package services

import (
	"testing"

	"github.com/convoforge/backend/internal/apperr"
	"github.com/convoforge/backend/internal/models"
	"github.com/stretchr/testify/require"
)

const (
	ownerID = uint(1)
	actor   = uint(2)
)

func newReactionFixture(t *testing.T) (*ReactionService, *fakeReactionRepo) {
	t.Helper()
	reactions := newFakeReactionRepo()
	posts := newFakePostRepo(
		&models.Post{ID: 10, UserID: ownerID, Title: "hello", Status: models.StatusActive},
		&models.Post{ID: 11, UserID: ownerID, Title: "gone", Status: models.StatusDeleted},
	)
	comments := newFakeCommentRepo(
		&models.Comment{ID: 20, PostID: 10, UserID: ownerID, Status: models.StatusActive},
	)
	return NewReactionService(reactions, posts, comments), reactions
}

// pairRows counts stored rows for the (actor, target) pair; the central
// invariant is that it never exceeds one.
func pairRows(repo *fakeReactionRepo, userID uint, targetType string, targetID uint) int {
	n := 0
	for _, r := range repo.rows {
		if r.UserID == userID && r.TargetType == targetType && r.TargetID == targetID {
			n++
		}
	}
	return n
}

func TestToggleCreatesFirstReaction(t *testing.T) {
	svc, repo := newReactionFixture(t)

	result, err := svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionUpvote)
	require.NoError(t, err)
	require.Equal(t, ToggleCreated, result.Outcome)
	require.NotNil(t, result.Reaction)
	require.Equal(t, models.ReactionUpvote, result.Reaction.Kind)
	require.Equal(t, 1, pairRows(repo, actor, models.TargetTypePost, 10))

	counts, err := repo.CountReactionsByKind(models.TargetTypePost, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), counts[models.ReactionUpvote])
}

func TestToggleSameKindRemoves(t *testing.T) {
	svc, repo := newReactionFixture(t)

	_, err := svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionUpvote)
	require.NoError(t, err)

	result, err := svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionUpvote)
	require.NoError(t, err)
	require.Equal(t, ToggleRemoved, result.Outcome)
	require.Nil(t, result.Reaction)
	require.Equal(t, 0, pairRows(repo, actor, models.TargetTypePost, 10))

	counts, err := repo.CountReactionsByKind(models.TargetTypePost, 10)
	require.NoError(t, err)
	require.Equal(t, int64(0), counts[models.ReactionUpvote])
}

func TestToggleDifferentKindUpdates(t *testing.T) {
	svc, repo := newReactionFixture(t)

	first, err := svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionUpvote)
	require.NoError(t, err)
	require.Equal(t, ToggleCreated, first.Outcome)

	second, err := svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionHeart)
	require.NoError(t, err)
	require.Equal(t, ToggleUpdated, second.Outcome)
	require.Equal(t, models.ReactionHeart, second.Reaction.Kind)
	require.Equal(t, 1, pairRows(repo, actor, models.TargetTypePost, 10))

	counts, err := repo.CountReactionsByKind(models.TargetTypePost, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), counts[models.ReactionHeart])
	require.Equal(t, int64(0), counts[models.ReactionUpvote])
}

func TestToggleRoundTrip(t *testing.T) {
	svc, repo := newReactionFixture(t)

	// create -> update -> toggle off leaves the pair as if it never reacted
	_, err := svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionUpvote)
	require.NoError(t, err)
	_, err = svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionAccurate)
	require.NoError(t, err)
	result, err := svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionAccurate)
	require.NoError(t, err)
	require.Equal(t, ToggleRemoved, result.Outcome)
	require.Equal(t, 0, pairRows(repo, actor, models.TargetTypePost, 10))
}

func TestToggleOnCommentTarget(t *testing.T) {
	svc, repo := newReactionFixture(t)

	result, err := svc.Toggle(actor, models.TargetTypeComment, 20, models.ReactionInsightful)
	require.NoError(t, err)
	require.Equal(t, ToggleCreated, result.Outcome)
	require.Equal(t, 1, pairRows(repo, actor, models.TargetTypeComment, 20))
}

func TestToggleRejectsOwnContent(t *testing.T) {
	svc, _ := newReactionFixture(t)

	_, err := svc.Toggle(ownerID, models.TargetTypePost, 10, models.ReactionUpvote)
	require.ErrorIs(t, err, apperr.ErrInvalidOperation)

	// Prior reaction state must not change the answer.
	_, err = svc.Toggle(ownerID, models.TargetTypeComment, 20, models.ReactionHeart)
	require.ErrorIs(t, err, apperr.ErrInvalidOperation)
}

func TestToggleRejectsUnknownKind(t *testing.T) {
	svc, repo := newReactionFixture(t)

	_, err := svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionKind("sparkle"))
	require.ErrorIs(t, err, apperr.ErrValidation)
	require.Equal(t, 0, pairRows(repo, actor, models.TargetTypePost, 10))
}

func TestToggleRejectsUnknownTargetType(t *testing.T) {
	svc, _ := newReactionFixture(t)

	_, err := svc.Toggle(actor, "story", 10, models.ReactionUpvote)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestToggleMissingAndDeletedTargets(t *testing.T) {
	svc, _ := newReactionFixture(t)

	_, err := svc.Toggle(actor, models.TargetTypePost, 999, models.ReactionUpvote)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Toggle(actor, models.TargetTypePost, 11, models.ReactionUpvote)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestToggleLostInsertRaceSameKindRemoves(t *testing.T) {
	svc, repo := newReactionFixture(t)

	// A concurrent identical request wins the insert; this call's create
	// hits the unique index, re-reads, and re-decides: same kind found,
	// so the second toggle removes.
	repo.conflicts = 1
	repo.raceKind = models.ReactionUpvote

	result, err := svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionUpvote)
	require.NoError(t, err)
	require.Equal(t, ToggleRemoved, result.Outcome)
	require.Equal(t, 0, pairRows(repo, actor, models.TargetTypePost, 10))
}

func TestToggleLostInsertRaceDifferentKindUpdates(t *testing.T) {
	svc, repo := newReactionFixture(t)

	repo.conflicts = 1
	repo.raceKind = models.ReactionDownvote

	result, err := svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionHeart)
	require.NoError(t, err)
	require.Equal(t, ToggleUpdated, result.Outcome)
	require.Equal(t, models.ReactionHeart, result.Reaction.Kind)
	require.Equal(t, 1, pairRows(repo, actor, models.TargetTypePost, 10))
}

func TestSummaryReportsCountsAndCallerKind(t *testing.T) {
	svc, _ := newReactionFixture(t)

	_, err := svc.Toggle(actor, models.TargetTypePost, 10, models.ReactionUpvote)
	require.NoError(t, err)
	_, err = svc.Toggle(uint(3), models.TargetTypePost, 10, models.ReactionHeart)
	require.NoError(t, err)

	summary, err := svc.Summary(actor, models.TargetTypePost, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), summary.Counts[models.ReactionUpvote])
	require.Equal(t, int64(1), summary.Counts[models.ReactionHeart])
	require.NotNil(t, summary.Mine)
	require.Equal(t, models.ReactionUpvote, *summary.Mine)

	// A caller with no reaction gets counts but no Mine.
	other, err := svc.Summary(uint(4), models.TargetTypePost, 10)
	require.NoError(t, err)
	require.Nil(t, other.Mine)
}
