package models

import "time"

// Bookmark marks a reader's place in a story. At most one bookmark exists per
// (user, story) pair; creating a second one updates the existing row's note
// and refreshes its timestamps instead of inserting.
type Bookmark struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_story_bookmark"`
	StoryID   string    `json:"story_id" gorm:"not null;index;uniqueIndex:idx_user_story_bookmark"`
	ChapterID *string   `json:"chapter_id,omitempty" gorm:"index"`
	Position  int       `json:"position" gorm:"default:0"`
	Note      *string   `json:"note,omitempty" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    *User    `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Story   *Story   `json:"story,omitempty" gorm:"foreignKey:StoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Chapter *Chapter `json:"-" gorm:"foreignKey:ChapterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// CreateBookmarkRequest defines the request body for creating or refreshing
// a bookmark
type CreateBookmarkRequest struct {
	StoryID   string  `json:"story_id" validate:"required"`
	ChapterID *string `json:"chapter_id,omitempty"`
	Position  int     `json:"position" validate:"min=0"`
	Note      *string `json:"note,omitempty" validate:"omitempty,max=500"`
}
