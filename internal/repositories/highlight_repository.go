package repositories

import (
	"github.com/sable-ink/inkwell/backend/internal/models"
	"gorm.io/gorm"
)

// HighlightRepository defines the interface for highlight data operations.
// Unlike bookmarks, highlights always insert; a user can mark the same story
// as many times as they like.
type HighlightRepository interface {
	CreateHighlight(highlight *models.Highlight) error
	GetHighlightByID(id string) (*models.Highlight, error)
	GetStoryHighlights(userID, storyID string) ([]models.Highlight, error)
	GetUserHighlights(userID string) ([]models.Highlight, error)
	DeleteHighlight(id string) error
}

// PostgresHighlightRepository implements HighlightRepository for PostgreSQL
type PostgresHighlightRepository struct {
	db *gorm.DB
}

// NewPostgresHighlightRepository creates a new PostgresHighlightRepository
func NewPostgresHighlightRepository(db *gorm.DB) *PostgresHighlightRepository {
	return &PostgresHighlightRepository{db: db}
}

// CreateHighlight creates a new highlight in PostgreSQL
func (r *PostgresHighlightRepository) CreateHighlight(highlight *models.Highlight) error {
	return r.db.Create(highlight).Error
}

// GetHighlightByID retrieves a highlight by ID
func (r *PostgresHighlightRepository) GetHighlightByID(id string) (*models.Highlight, error) {
	var highlight models.Highlight
	if err := r.db.First(&highlight, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &highlight, nil
}

// GetStoryHighlights retrieves a user's highlights on one story, in reading
// order by start offset
func (r *PostgresHighlightRepository) GetStoryHighlights(userID, storyID string) ([]models.Highlight, error) {
	var highlights []models.Highlight
	err := r.db.Where("user_id = ? AND story_id = ?", userID, storyID).
		Order("start_offset ASC").
		Find(&highlights).Error
	return highlights, err
}

// GetUserHighlights retrieves all of a user's highlights, newest first
func (r *PostgresHighlightRepository) GetUserHighlights(userID string) ([]models.Highlight, error) {
	var highlights []models.Highlight
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&highlights).Error
	return highlights, err
}

// DeleteHighlight removes a highlight by ID
func (r *PostgresHighlightRepository) DeleteHighlight(id string) error {
	res := r.db.Delete(&models.Highlight{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
