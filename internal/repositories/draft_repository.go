package repositories

import (
	"github.com/sable-ink/inkwell/backend/internal/models"
	"gorm.io/gorm"
)

// DraftRepository defines the interface for draft data operations
type DraftRepository interface {
	CreateDraft(draft *models.Draft) error
	GetDraftByID(id string) (*models.Draft, error)
	GetDraftsByAuthor(authorID string) ([]models.Draft, error)
	UpdateDraft(id string, updates map[string]interface{}) (*models.Draft, error)
	DeleteDraft(id string) error
}

// PostgresDraftRepository implements DraftRepository for PostgreSQL
type PostgresDraftRepository struct {
	db *gorm.DB
}

// NewPostgresDraftRepository creates a new PostgresDraftRepository
func NewPostgresDraftRepository(db *gorm.DB) *PostgresDraftRepository {
	return &PostgresDraftRepository{db: db}
}

// CreateDraft creates a new draft in PostgreSQL
func (r *PostgresDraftRepository) CreateDraft(draft *models.Draft) error {
	return r.db.Create(draft).Error
}

// GetDraftByID retrieves a draft by ID. Author-only visibility is enforced
// by the caller, which owns the identity.
func (r *PostgresDraftRepository) GetDraftByID(id string) (*models.Draft, error) {
	var draft models.Draft
	if err := r.db.First(&draft, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &draft, nil
}

// GetDraftsByAuthor retrieves an author's drafts, most recently touched first
func (r *PostgresDraftRepository) GetDraftsByAuthor(authorID string) ([]models.Draft, error) {
	var drafts []models.Draft
	err := r.db.Where("author_id = ?", authorID).Order("updated_at DESC").Find(&drafts).Error
	return drafts, err
}

// UpdateDraft applies a field patch to a draft
func (r *PostgresDraftRepository) UpdateDraft(id string, updates map[string]interface{}) (*models.Draft, error) {
	res := r.db.Model(&models.Draft{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetDraftByID(id)
}

// DeleteDraft hard-deletes a draft
func (r *PostgresDraftRepository) DeleteDraft(id string) error {
	res := r.db.Delete(&models.Draft{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
