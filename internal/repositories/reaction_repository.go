package repositories

import (
	"errors"
	"fmt"

	"github.com/convoforge/backend/internal/apperr"
	"github.com/convoforge/backend/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ReactionRepository defines the interface for reaction data operations
type ReactionRepository interface {
	GetReaction(userID uint, targetType string, targetID uint) (*models.Reaction, error)
	CreateReaction(reaction *models.Reaction) error
	UpdateReactionKind(id uint, kind models.ReactionKind) error
	DeleteReaction(id uint) error
	CountReactionsByKind(targetType string, targetID uint) (map[models.ReactionKind]int64, error)
}

// PostgresReactionRepository implements ReactionRepository for PostgreSQL
type PostgresReactionRepository struct {
	db *gorm.DB
}

// NewPostgresReactionRepository creates a new PostgresReactionRepository
func NewPostgresReactionRepository(db *gorm.DB) *PostgresReactionRepository {
	return &PostgresReactionRepository{db: db}
}

// GetReaction retrieves a user's reaction on a target; at most one exists
// per (user, target) pair by the unique index.
func (r *PostgresReactionRepository) GetReaction(userID uint, targetType string, targetID uint) (*models.Reaction, error) {
	var reaction models.Reaction
	err := r.db.
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: reaction for %s %d", apperr.ErrNotFound, targetType, targetID)
		}
		return nil, err
	}
	return &reaction, nil
}

// CreateReaction inserts a new reaction. A unique-index violation on the
// (user, target) pair is reported as apperr.ErrDuplicate so the toggle can
// re-read and re-decide instead of surfacing the race.
func (r *PostgresReactionRepository) CreateReaction(reaction *models.Reaction) error {
	if err := r.db.Create(reaction).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: reaction for %s %d", apperr.ErrDuplicate, reaction.TargetType, reaction.TargetID)
		}
		return err
	}
	return nil
}

// UpdateReactionKind overwrites a reaction's kind in place
func (r *PostgresReactionRepository) UpdateReactionKind(id uint, kind models.ReactionKind) error {
	res := r.db.Model(&models.Reaction{}).Where("id = ?", id).Update("kind", kind)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: reaction %d", apperr.ErrNotFound, id)
	}
	return nil
}

// DeleteReaction removes a reaction row (toggle off)
func (r *PostgresReactionRepository) DeleteReaction(id uint) error {
	res := r.db.Delete(&models.Reaction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: reaction %d", apperr.ErrNotFound, id)
	}
	return nil
}

// CountReactionsByKind computes a target's reaction counts grouped by kind.
// Counts are always derived on read; nothing maintains them incrementally.
func (r *PostgresReactionRepository) CountReactionsByKind(targetType string, targetID uint) (map[models.ReactionKind]int64, error) {
	var rows []struct {
		Kind  models.ReactionKind
		Count int64
	}
	err := r.db.Model(&models.Reaction{}).
		Select("kind, count(*) as count").
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ReactionKind]int64, len(rows))
	for _, row := range rows {
		counts[row.Kind] = row.Count
	}
	return counts, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
