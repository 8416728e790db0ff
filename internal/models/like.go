package models

import "time"

// Like represents a like on a story. Existence is the whole signal; the
// composite unique index keeps concurrent toggles from producing duplicates.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_story_like"`
	StoryID   string    `json:"story_id" gorm:"not null;index;uniqueIndex:idx_user_story_like"`
	CreatedAt time.Time `json:"created_at"`

	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Story *Story `json:"-" gorm:"foreignKey:StoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// ToggleResult is the outcome of a like toggle: the new liked state and the
// story's like count after the flip.
type ToggleResult struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}
