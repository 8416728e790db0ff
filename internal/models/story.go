package models

import "time"

// Story categories
const (
	CategoryStory      = "story"
	CategoryPoem       = "poem"
	CategoryFanfiction = "fanfiction"
)

// Story represents a published or in-progress work. PublishedAt is non-nil
// exactly when Published is true. A story in chapter mode defers its primary
// content to its chapters; HasChapters never resets to false once set.
type Story struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title" gorm:"size:200;not null"`
	Content       string     `json:"content" gorm:"type:text;not null"`
	Excerpt       *string    `json:"excerpt,omitempty" gorm:"size:300"`
	Category      string     `json:"category" gorm:"size:20;not null;index"`
	CoverImageURL *string    `json:"cover_image_url,omitempty" gorm:"size:500"`
	AuthorID      string     `json:"author_id" gorm:"not null;index"`
	Published     bool       `json:"published" gorm:"default:false;index"`
	PublishedAt   *time.Time `json:"published_at,omitempty" gorm:"index"`
	WordCount     int        `json:"word_count" gorm:"default:0"`
	HasChapters   bool       `json:"has_chapters" gorm:"default:false"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// StoryWithLikes is the denormalized feed row: a story with its author
// profile and aggregate like count.
type StoryWithLikes struct {
	Story
	LikeCount int64 `json:"like_count"`
}

// CreateStoryRequest defines the request body for creating a new story
type CreateStoryRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=200"`
	Content       string  `json:"content" validate:"required,min=1"`
	Excerpt       *string `json:"excerpt,omitempty" validate:"omitempty,max=300"`
	Category      string  `json:"category" validate:"required,oneof=story poem fanfiction"`
	CoverImageURL *string `json:"cover_image_url,omitempty" validate:"omitempty,url,max=500"`
	HasChapters   bool    `json:"has_chapters"`
}

// UpdateStoryRequest defines the request body for patching an existing story.
// Only the listed fields are mutable; publish state changes go through the
// publish endpoint.
type UpdateStoryRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content       *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Excerpt       *string `json:"excerpt,omitempty" validate:"omitempty,max=300"`
	Category      *string `json:"category,omitempty" validate:"omitempty,oneof=story poem fanfiction"`
	CoverImageURL *string `json:"cover_image_url,omitempty" validate:"omitempty,url,max=500"`
}
