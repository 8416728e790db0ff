package models

import "time"

// Chapter represents a single chapter of a story in chapter mode. The
// (story_id, number) pair is unique; duplicate numbers surface as a
// constraint violation from the store.
type Chapter struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	StoryID     string     `json:"story_id" gorm:"not null;index;uniqueIndex:idx_story_chapter_number"`
	Number      int        `json:"number" gorm:"not null;uniqueIndex:idx_story_chapter_number"` // 1-based
	Title       string     `json:"title" gorm:"size:200;not null"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	Published   bool       `json:"published" gorm:"default:false;index"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	WordCount   int        `json:"word_count" gorm:"default:0"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Story *Story `json:"-" gorm:"foreignKey:StoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// CreateChapterRequest defines the request body for adding a chapter
type CreateChapterRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1"`
	Number  int    `json:"number" validate:"required,min=1"`
}

// UpdateChapterRequest defines the request body for patching a chapter
type UpdateChapterRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Number  *int    `json:"number,omitempty" validate:"omitempty,min=1"`
}
