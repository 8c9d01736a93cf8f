package repositories

import (
	"fmt"

	"github.com/convoforge/backend/internal/models"
	"gorm.io/gorm"
)

// ForkRepository defines the interface for fork data operations
type ForkRepository interface {
	CreateFork(conversation *models.Conversation, messages []models.Message, record *models.ConversationFork) error
	GetForksByPostID(postID uint) ([]models.ConversationFork, error)
	CountActiveForksByPostID(postID uint) (int64, error)
}

// PostgresForkRepository implements ForkRepository for PostgreSQL
type PostgresForkRepository struct {
	db *gorm.DB
}

// NewPostgresForkRepository creates a new PostgresForkRepository
func NewPostgresForkRepository(db *gorm.DB) *PostgresForkRepository {
	return &PostgresForkRepository{db: db}
}

// CreateFork materializes one fork event in a single transaction: the new
// conversation, its seed messages, the fork record, and the source post's
// fork_count increment all commit together or not at all. The increment is
// a storage-side expression so concurrent forks of the same post never lose
// updates.
func (r *PostgresForkRepository) CreateFork(conversation *models.Conversation, messages []models.Message, record *models.ConversationFork) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conversation).Error; err != nil {
			return err
		}

		for i := range messages {
			messages[i].ConversationID = conversation.ID
		}
		if len(messages) > 0 {
			if err := tx.Create(&messages).Error; err != nil {
				return err
			}
		}

		record.ConversationID = conversation.ID
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Post{}).
			Where("id = ?", record.PostID).
			UpdateColumn("fork_count", gorm.Expr("fork_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("post %d vanished during fork", record.PostID)
		}
		return nil
	})
}

// GetForksByPostID retrieves a post's active fork records, newest first
func (r *PostgresForkRepository) GetForksByPostID(postID uint) ([]models.ConversationFork, error) {
	var forks []models.ConversationFork
	err := r.db.
		Where("post_id = ? AND status = ?", postID, models.StatusActive).
		Order("forked_at DESC").
		Find(&forks).Error
	return forks, err
}

// CountActiveForksByPostID counts a post's active fork records. This always
// agrees with the post's fork_count column because both are written inside
// the same transaction.
func (r *PostgresForkRepository) CountActiveForksByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ConversationFork{}).
		Where("post_id = ? AND status = ?", postID, models.StatusActive).
		Count(&count).Error
	return count, err
}
