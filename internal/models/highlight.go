package models

import "time"

// Highlight represents a reader's marked passage. Multiple highlights per
// user per story are allowed; offsets index into the selected text.
type Highlight struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"not null;index"`
	StoryID     string    `json:"story_id" gorm:"not null;index"`
	ChapterID   *string   `json:"chapter_id,omitempty" gorm:"index"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	StartOffset int       `json:"start_offset" gorm:"not null"`
	EndOffset   int       `json:"end_offset" gorm:"not null"`
	Color       string    `json:"color" gorm:"size:20;default:'yellow'"`
	Note        *string   `json:"note,omitempty" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`

	User    *User    `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Story   *Story   `json:"-" gorm:"foreignKey:StoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Chapter *Chapter `json:"-" gorm:"foreignKey:ChapterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// CreateHighlightRequest defines the request body for creating a highlight
type CreateHighlightRequest struct {
	StoryID     string  `json:"story_id" validate:"required"`
	ChapterID   *string `json:"chapter_id,omitempty"`
	Text        string  `json:"text" validate:"required,min=1"`
	StartOffset int     `json:"start_offset" validate:"min=0"`
	EndOffset   int     `json:"end_offset" validate:"gtefield=StartOffset"`
	Color       string  `json:"color,omitempty" validate:"omitempty,oneof=yellow green blue pink orange"`
	Note        *string `json:"note,omitempty" validate:"omitempty,max=500"`
}
