package repositories

import (
	"errors"
	"fmt"

	"github.com/convoforge/backend/internal/apperr"
	"github.com/convoforge/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostsByUserID(userID uint, offset, limit int) ([]models.Post, error)
	GetPostsByUserIDs(userIDs []uint, offset, limit int) ([]models.Post, error)
	GetAllPosts(offset, limit int) ([]models.Post, error)
	GetPostsByTag(tag string, offset, limit int) ([]models.Post, error)
	UpdatePost(post *models.Post) error
	ReplaceTags(post *models.Post, tags []models.Tag) error
	SetStatus(id uint, status models.Status) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post, attaching any pre-resolved tags
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID with its tags, regardless of status.
// Callers decide whether a non-active post counts as found.
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByUserID retrieves a user's active posts, newest first
func (r *PostgresPostRepository) GetPostsByUserID(userID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Tags").
		Where("user_id = ? AND status = ?", userID, models.StatusActive).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// GetPostsByUserIDs retrieves active posts from a set of users, newest first
func (r *PostgresPostRepository) GetPostsByUserIDs(userIDs []uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	if len(userIDs) == 0 {
		return posts, nil
	}
	err := r.db.Preload("Tags").
		Where("user_id IN ? AND status = ?", userIDs, models.StatusActive).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// GetAllPosts retrieves all active posts with pagination, newest first
func (r *PostgresPostRepository) GetAllPosts(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Tags").
		Where("status = ?", models.StatusActive).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// GetPostsByTag retrieves active posts carrying the given normalized tag
func (r *PostgresPostRepository) GetPostsByTag(tag string, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Tags").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("tags.name = ? AND posts.status = ?", tag, models.StatusActive).
		Order("posts.created_at DESC").Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// UpdatePost updates an existing post's own columns
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Omit("Tags").Save(post).Error
}

// ReplaceTags replaces a post's tag associations
func (r *PostgresPostRepository) ReplaceTags(post *models.Post, tags []models.Tag) error {
	return r.db.Model(post).Association("Tags").Replace(tags)
}

// SetStatus updates a post's lifecycle status
func (r *PostgresPostRepository) SetStatus(id uint, status models.Status) error {
	res := r.db.Model(&models.Post{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: post %d", apperr.ErrNotFound, id)
	}
	return nil
}
