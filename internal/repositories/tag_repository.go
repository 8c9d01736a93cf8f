package repositories

import (
	"github.com/convoforge/backend/internal/models"
	"gorm.io/gorm"
)

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	GetOrCreateTags(names []string) ([]models.Tag, error)
	GetTags() ([]models.Tag, error)
}

// PostgresTagRepository implements TagRepository for PostgreSQL
type PostgresTagRepository struct {
	db *gorm.DB
}

// NewPostgresTagRepository creates a new PostgresTagRepository
func NewPostgresTagRepository(db *gorm.DB) *PostgresTagRepository {
	return &PostgresTagRepository{db: db}
}

// GetOrCreateTags resolves raw tag names to rows, normalizing each name
// and creating missing tags. Names that normalize to "" are skipped, as
// are duplicates within the same request.
func (r *PostgresTagRepository) GetOrCreateTags(names []string) ([]models.Tag, error) {
	seen := make(map[string]bool, len(names))
	tags := make([]models.Tag, 0, len(names))
	for _, raw := range names {
		name := models.NormalizeTagName(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		var tag models.Tag
		if err := r.db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// GetTags retrieves all tags ordered by name
func (r *PostgresTagRepository) GetTags() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}
