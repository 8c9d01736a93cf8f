package repositories

import (
	"errors"
	"fmt"

	"github.com/convoforge/backend/internal/apperr"
	"github.com/convoforge/backend/internal/models"
	"gorm.io/gorm"
)

// ConversationRepository defines the interface for conversation and
// message data operations
type ConversationRepository interface {
	CreateConversation(conversation *models.Conversation) error
	GetConversationByID(id uint) (*models.Conversation, error)
	GetConversationsByUserID(userID uint) ([]models.Conversation, error)
	SetStatus(id uint, status models.Status) error
	AppendMessage(message *models.Message) error
	GetMessageByID(id uint) (*models.Message, error)
	GetMessagesByConversationID(conversationID uint) ([]models.Message, error)
}

// PostgresConversationRepository implements ConversationRepository for PostgreSQL
type PostgresConversationRepository struct {
	db *gorm.DB
}

// NewPostgresConversationRepository creates a new PostgresConversationRepository
func NewPostgresConversationRepository(db *gorm.DB) *PostgresConversationRepository {
	return &PostgresConversationRepository{db: db}
}

// CreateConversation creates a new conversation
func (r *PostgresConversationRepository) CreateConversation(conversation *models.Conversation) error {
	return r.db.Create(conversation).Error
}

// GetConversationByID retrieves a conversation by ID, regardless of status
func (r *PostgresConversationRepository) GetConversationByID(id uint) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.First(&conversation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: conversation %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &conversation, nil
}

// GetConversationsByUserID retrieves a user's non-deleted conversations,
// newest first
func (r *PostgresConversationRepository) GetConversationsByUserID(userID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.
		Where("user_id = ? AND status <> ?", userID, models.StatusDeleted).
		Order("created_at DESC").
		Find(&conversations).Error
	return conversations, err
}

// SetStatus updates a conversation's lifecycle status
func (r *PostgresConversationRepository) SetStatus(id uint, status models.Status) error {
	res := r.db.Model(&models.Conversation{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: conversation %d", apperr.ErrNotFound, id)
	}
	return nil
}

// AppendMessage appends a message to a conversation
func (r *PostgresConversationRepository) AppendMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetMessageByID retrieves a message by ID
func (r *PostgresConversationRepository) GetMessageByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: message %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &message, nil
}

// GetMessagesByConversationID retrieves a conversation's messages in
// creation order
func (r *PostgresConversationRepository) GetMessagesByConversationID(conversationID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}
