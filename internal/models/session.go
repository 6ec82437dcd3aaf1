package models

import (
	"time"
)

// Session represents an authenticated principal's live credential
type Session struct {
	// Token is the opaque credential presented on each request
	Token string `json:"token"`

	// UserID is the profile ID of the authenticated member
	UserID string `json:"user_id"`

	// CreatedAt is when the session was issued
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is when the session stops being honored
	ExpiresAt time.Time `json:"expires_at"`
}
