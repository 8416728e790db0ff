package models

import "time"

// Draft is an author-only scratch entity. Every content field stays nullable
// until the draft is promoted into a story; promotion hard-deletes the draft.
type Draft struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	AuthorID      string    `json:"author_id" gorm:"not null;index"`
	Title         *string   `json:"title,omitempty" gorm:"size:200"`
	Content       *string   `json:"content,omitempty" gorm:"type:text"`
	Excerpt       *string   `json:"excerpt,omitempty" gorm:"size:300"`
	Category      *string   `json:"category,omitempty" gorm:"size:20"`
	CoverImageURL *string   `json:"cover_image_url,omitempty" gorm:"size:500"`
	CharacterData *string   `json:"character_data,omitempty" gorm:"type:jsonb"` // free-form character sheets
	Outline       *string   `json:"outline,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Author *User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// CreateDraftRequest defines the request body for creating a draft
type CreateDraftRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content       *string `json:"content,omitempty"`
	Excerpt       *string `json:"excerpt,omitempty" validate:"omitempty,max=300"`
	Category      *string `json:"category,omitempty" validate:"omitempty,oneof=story poem fanfiction"`
	CoverImageURL *string `json:"cover_image_url,omitempty" validate:"omitempty,url,max=500"`
	CharacterData *string `json:"character_data,omitempty" validate:"omitempty,json"`
	Outline       *string `json:"outline,omitempty"`
}

// UpdateDraftRequest defines the request body for patching a draft
type UpdateDraftRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content       *string `json:"content,omitempty"`
	Excerpt       *string `json:"excerpt,omitempty" validate:"omitempty,max=300"`
	Category      *string `json:"category,omitempty" validate:"omitempty,oneof=story poem fanfiction"`
	CoverImageURL *string `json:"cover_image_url,omitempty" validate:"omitempty,url,max=500"`
	CharacterData *string `json:"character_data,omitempty" validate:"omitempty,json"`
	Outline       *string `json:"outline,omitempty"`
}
