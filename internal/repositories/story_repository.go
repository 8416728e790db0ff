package repositories

import (
	"time"

	"github.com/sable-ink/inkwell/backend/internal/models"
	"gorm.io/gorm"
)

// Result cap for the public feed and other aggregate reads.
const feedLimit = 50

// StoryRepository defines the interface for story data operations
type StoryRepository interface {
	CreateStory(story *models.Story) error
	GetStoryByID(id string) (*models.Story, error)
	GetStoriesByAuthor(authorID string) ([]models.Story, error)
	UpdateStory(id string, updates map[string]interface{}) (*models.Story, error)
	PublishStory(id string) (*models.Story, error)
	EnableChapters(id string) error
	DeleteStory(id string) error
	GetPublishedStories(category, sortBy string) ([]models.StoryWithLikes, error)
	GetLikedStories(userID string) ([]models.StoryWithLikes, error)
}

// PostgresStoryRepository implements StoryRepository for PostgreSQL
type PostgresStoryRepository struct {
	db *gorm.DB
}

// NewPostgresStoryRepository creates a new PostgresStoryRepository
func NewPostgresStoryRepository(db *gorm.DB) *PostgresStoryRepository {
	return &PostgresStoryRepository{db: db}
}

// CreateStory creates a new story in PostgreSQL
func (r *PostgresStoryRepository) CreateStory(story *models.Story) error {
	return r.db.Create(story).Error
}

// GetStoryByID retrieves a story with its author profile
func (r *PostgresStoryRepository) GetStoryByID(id string) (*models.Story, error) {
	var story models.Story
	if err := r.db.Preload("Author").First(&story, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

// GetStoriesByAuthor retrieves all stories of an author, newest first,
// published or not
func (r *PostgresStoryRepository) GetStoriesByAuthor(authorID string) ([]models.Story, error) {
	var stories []models.Story
	err := r.db.Where("author_id = ?", authorID).Order("created_at DESC").Find(&stories).Error
	return stories, err
}

// UpdateStory applies a field patch to a story. GORM refreshes updated_at on
// every patch; publish invariants are not re-validated here.
func (r *PostgresStoryRepository) UpdateStory(id string, updates map[string]interface{}) (*models.Story, error) {
	res := r.db.Model(&models.Story{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetStoryByID(id)
}

// PublishStory marks a story published and stamps published_at. Re-publishing
// resets the timestamp; last write wins.
func (r *PostgresStoryRepository) PublishStory(id string) (*models.Story, error) {
	now := time.Now()
	res := r.db.Model(&models.Story{}).Where("id = ?", id).Updates(map[string]interface{}{
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
	return r.GetStoryByID(id)
}

// EnableChapters flips has_chapters on. The flag never resets to false, and
// flipping it does not count as a content update, so updated_at is left alone.
func (r *PostgresStoryRepository) EnableChapters(id string) error {
	res := r.db.Model(&models.Story{}).Where("id = ?", id).UpdateColumn("has_chapters", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteStory hard-deletes a story. Chapters and engagement rows go with it
// via the cascade foreign keys.
func (r *PostgresStoryRepository) DeleteStory(id string) error {
	res := r.db.Delete(&models.Story{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetPublishedStories is the public feed read. Stories with zero likes still
// appear (the likes join is an outer join), category "all" or empty means no
// filter, and any sortBy other than "recent" orders by like count; trending
// is the default, not recency.
func (r *PostgresStoryRepository) GetPublishedStories(category, sortBy string) ([]models.StoryWithLikes, error) {
	query := r.db.Model(&models.Story{}).
		Select("stories.*, COUNT(likes.id) AS like_count").
		Joins("LEFT JOIN likes ON likes.story_id = stories.id").
		Where("stories.published = ?", true).
		Group("stories.id").
		Preload("Author")

	if category != "" && category != "all" {
		query = query.Where("stories.category = ?", category)
	}

	if sortBy == "recent" {
		query = query.Order("stories.published_at DESC")
	} else {
		query = query.Order("like_count DESC, stories.published_at DESC")
	}

	var stories []models.StoryWithLikes
	if err := query.Limit(feedLimit).Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

// GetLikedStories returns the stories a user has liked, most recently liked
// first, with author profiles and current like counts.
func (r *PostgresStoryRepository) GetLikedStories(userID string) ([]models.StoryWithLikes, error) {
	var stories []models.StoryWithLikes
	err := r.db.Model(&models.Story{}).
		Select("stories.*, (SELECT COUNT(*) FROM likes lc WHERE lc.story_id = stories.id) AS like_count").
		Joins("JOIN likes ON likes.story_id = stories.id AND likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Limit(feedLimit).
		Preload("Author").
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}
