package repositories

import (
	"github.com/sable-ink/inkwell/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookmarkRepository defines the interface for bookmark data operations
type BookmarkRepository interface {
	UpsertBookmark(bookmark *models.Bookmark) (*models.Bookmark, error)
	GetBookmark(userID, storyID string) (*models.Bookmark, error)
	GetUserBookmarks(userID string) ([]models.Bookmark, error)
	DeleteBookmark(userID, storyID string) error
}

// PostgresBookmarkRepository implements BookmarkRepository for PostgreSQL
type PostgresBookmarkRepository struct {
	db *gorm.DB
}

// NewPostgresBookmarkRepository creates a new PostgresBookmarkRepository
func NewPostgresBookmarkRepository(db *gorm.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

// UpsertBookmark inserts a bookmark or, when the (user, story) pair already
// has one, updates that row's note and refreshes its creation timestamp in
// place. One INSERT ... ON CONFLICT statement, so there is no window for a
// duplicate row. The surviving row is re-read and returned, since on
// conflict the existing row keeps its original id.
func (r *PostgresBookmarkRepository) UpsertBookmark(bookmark *models.Bookmark) (*models.Bookmark, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "story_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"note", "created_at", "updated_at"}),
	}).Create(bookmark).Error
	if err != nil {
		return nil, err
	}
	return r.GetBookmark(bookmark.UserID, bookmark.StoryID)
}

// GetBookmark retrieves a user's bookmark for a story
func (r *PostgresBookmarkRepository) GetBookmark(userID, storyID string) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.Where("user_id = ? AND story_id = ?", userID, storyID).First(&bookmark).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// GetUserBookmarks retrieves all of a user's bookmarks with their parent
// stories, most recently touched first
func (r *PostgresBookmarkRepository) GetUserBookmarks(userID string) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Preload("Story").
		Preload("Story.Author").
		Find(&bookmarks).Error
	return bookmarks, err
}

// DeleteBookmark removes a user's bookmark for a story
func (r *PostgresBookmarkRepository) DeleteBookmark(userID, storyID string) error {
	res := r.db.Where("user_id = ? AND story_id = ?", userID, storyID).Delete(&models.Bookmark{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
