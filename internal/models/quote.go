package models

import "time"

// Quote is a passage a reader saved from a story. Duplicates are allowed;
// IsPublic gates inclusion in the global public quote feed.
type Quote struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	StoryID   string    `json:"story_id" gorm:"not null;index"`
	ChapterID *string   `json:"chapter_id,omitempty" gorm:"index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	IsPublic  bool      `json:"is_public" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`

	Story   *Story   `json:"story,omitempty" gorm:"foreignKey:StoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Chapter *Chapter `json:"-" gorm:"foreignKey:ChapterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// CreateQuoteRequest defines the request body for saving a quote
type CreateQuoteRequest struct {
	StoryID   string  `json:"story_id" validate:"required"`
	ChapterID *string `json:"chapter_id,omitempty"`
	Text      string  `json:"text" validate:"required,min=1"`
	IsPublic  bool    `json:"is_public"`
}
