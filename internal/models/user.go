package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a reader or author account. Rows are keyed by the identity
// provider's subject, so first sign-in and later profile refreshes both go
// through an upsert rather than a create/update pair.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Email           *string   `json:"email,omitempty" gorm:"uniqueIndex"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Username        *string   `json:"username,omitempty" gorm:"uniqueIndex"`
	Bio             string    `json:"bio"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UpdateProfileRequest defines the mutable profile fields. Identity and
// timestamps are never patchable.
type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName        *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Username        *string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	Bio             *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfileImageURL *string `json:"profile_image_url,omitempty" validate:"omitempty,url,max=500"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
