package repositories

import (
	"github.com/sable-ink/inkwell/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	ToggleLike(userID, storyID string) (*models.ToggleResult, error)
	GetLikeCount(storyID string) (int64, error)
	HasUserLiked(userID, storyID string) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// ToggleLike flips the like state for (userID, storyID). Liking someone
// else's story also creates one "like" notification for its author;
// self-likes are allowed but stay silent. The whole flip runs in a single
// transaction, and the composite unique index on likes backs it up against
// concurrent duplicate toggles.
func (r *PostgresLikeRepository) ToggleLike(userID, storyID string) (*models.ToggleResult, error) {
	var result models.ToggleResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var story models.Story
		if err := tx.Select("id", "author_id").First(&story, "id = ?", storyID).Error; err != nil {
			return err
		}

		res := tx.Where("user_id = ? AND story_id = ?", userID, storyID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			result.Liked = false
		} else {
			if err := tx.Create(&models.Like{UserID: userID, StoryID: storyID}).Error; err != nil {
				return err
			}
			result.Liked = true

			if story.AuthorID != userID {
				notification := &models.Notification{
					Type:        models.NotificationTypeLike,
					RecipientID: story.AuthorID,
					ActorID:     userID,
					StoryID:     &story.ID,
				}
				if err := tx.Create(notification).Error; err != nil {
					return err
				}
			}
		}

		return tx.Model(&models.Like{}).Where("story_id = ?", storyID).Count(&result.Count).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetLikeCount retrieves the count of likes for a specific story
func (r *PostgresLikeRepository) GetLikeCount(storyID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("story_id = ?", storyID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasUserLiked checks if a user has liked a specific story
func (r *PostgresLikeRepository) HasUserLiked(userID, storyID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND story_id = ?", userID, storyID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
