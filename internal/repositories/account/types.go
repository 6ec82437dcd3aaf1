package account

import (
	"time"

	"github.com/stbguild/guildhall/internal/models"
)

// Credentials holds a member's sign-in secret
type Credentials struct {
	// UserID is the profile ID the credentials belong to
	UserID string `json:"user_id"`

	// Email is the sign-in email address
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password
	PasswordHash string `json:"password_hash"`

	// CreatedAt is when the account was registered
	CreatedAt time.Time `json:"created_at"`
}

// SaveCredentialsInput contains parameters for saving credentials
type SaveCredentialsInput struct {
	Credentials *Credentials
}

// GetCredentialsInput contains parameters for retrieving credentials
type GetCredentialsInput struct {
	Email string
}

// SaveSessionInput contains parameters for saving a session
type SaveSessionInput struct {
	Session *models.Session

	// TTL is how long Redis keeps the session
	TTL time.Duration
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	Token string
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	Token string
}
