package repositories

import (
	"time"

	"github.com/sable-ink/inkwell/backend/internal/models"
	"gorm.io/gorm"
)

// ChapterRepository defines the interface for chapter data operations
type ChapterRepository interface {
	CreateChapter(chapter *models.Chapter) error
	GetChapterByID(id string) (*models.Chapter, error)
	GetStoryChapters(storyID string) ([]models.Chapter, error)
	UpdateChapter(id string, updates map[string]interface{}) (*models.Chapter, error)
	PublishChapter(id string) (*models.Chapter, error)
	DeleteChapter(id string) error
}

// PostgresChapterRepository implements ChapterRepository for PostgreSQL
type PostgresChapterRepository struct {
	db *gorm.DB
}

// NewPostgresChapterRepository creates a new PostgresChapterRepository
func NewPostgresChapterRepository(db *gorm.DB) *PostgresChapterRepository {
	return &PostgresChapterRepository{db: db}
}

// CreateChapter inserts a chapter and flips the parent story into chapter
// mode in the same transaction. has_chapters stays true from here on.
func (r *PostgresChapterRepository) CreateChapter(chapter *models.Chapter) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chapter).Error; err != nil {
			return err
		}
		return tx.Model(&models.Story{}).
			Where("id = ?", chapter.StoryID).
			UpdateColumn("has_chapters", true).Error
	})
}

// GetChapterByID retrieves a chapter by ID
func (r *PostgresChapterRepository) GetChapterByID(id string) (*models.Chapter, error) {
	var chapter models.Chapter
	if err := r.db.First(&chapter, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

// GetStoryChapters returns all chapters of a story in ascending chapter
// number order, published or not. Visibility filtering is the caller's job.
func (r *PostgresChapterRepository) GetStoryChapters(storyID string) ([]models.Chapter, error) {
	var chapters []models.Chapter
	err := r.db.Where("story_id = ?", storyID).Order("number ASC").Find(&chapters).Error
	return chapters, err
}

// UpdateChapter applies a field patch to a chapter
func (r *PostgresChapterRepository) UpdateChapter(id string, updates map[string]interface{}) (*models.Chapter, error) {
	res := r.db.Model(&models.Chapter{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetChapterByID(id)
}

// PublishChapter marks a chapter published and stamps published_at, mirroring
// the story publish transition.
func (r *PostgresChapterRepository) PublishChapter(id string) (*models.Chapter, error) {
	now := time.Now()
	res := r.db.Model(&models.Chapter{}).Where("id = ?", id).Updates(map[string]interface{}{
		"published":    true,
		"published_at": now,
		"updated_at":   now,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetChapterByID(id)
}

// DeleteChapter hard-deletes a chapter. Highlights, bookmarks and quotes
// pointing at it are removed by the cascade foreign keys.
func (r *PostgresChapterRepository) DeleteChapter(id string) error {
	res := r.db.Delete(&models.Chapter{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
