package repositories

import (
	"errors"
	"fmt"

	"github.com/convoforge/backend/internal/apperr"
	"github.com/convoforge/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByPostID(postID uint) ([]models.Comment, error)
	UpdateComment(comment *models.Comment) error
	SetStatus(id uint, status models.Status) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment by ID, regardless of status
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comment %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostID retrieves a post's active comments as a flat list
// ordered by creation time; the thread tree is assembled in memory.
func (r *PostgresCommentRepository) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.
		Where("post_id = ? AND status = ?", postID, models.StatusActive).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

// UpdateComment updates an existing comment
func (r *PostgresCommentRepository) UpdateComment(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// SetStatus updates a comment's lifecycle status
func (r *PostgresCommentRepository) SetStatus(id uint, status models.Status) error {
	res := r.db.Model(&models.Comment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: comment %d", apperr.ErrNotFound, id)
	}
	return nil
}
