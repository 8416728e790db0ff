package models

import "time"

// Notification types
const (
	NotificationTypeLike = "like"
)

// Notification represents a user notification. Created only as a side effect
// of engagement (a like on the recipient's story), never directly by a caller.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:30;not null;index"`
	RecipientID string    `json:"recipient_id" gorm:"not null;index"`
	ActorID     string    `json:"actor_id" gorm:"index"`
	StoryID     *string   `json:"story_id,omitempty" gorm:"index"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`

	Story     *Story `json:"story,omitempty" gorm:"foreignKey:StoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Actor     *User  `json:"actor,omitempty" gorm:"foreignKey:ActorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Recipient *User  `json:"-" gorm:"foreignKey:RecipientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
