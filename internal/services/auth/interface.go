package auth

import (
	"context"

	"github.com/stbguild/guildhall/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/stbguild/guildhall/internal/services/auth Service

// Provider is the session backend the resolver observes. It tracks the
// session most recently issued or restored in this process and fires
// callbacks when it changes.
type Provider interface {
	// GetCurrentSession returns the active session, or nil when signed out
	GetCurrentSession(ctx context.Context) (*models.Session, error)

	// OnSessionChange registers a callback fired with the new session
	// on sign-in and nil on sign-out. It returns an unsubscribe func.
	OnSessionChange(fn func(session *models.Session)) func()

	// SignOut revokes a session
	SignOut(ctx context.Context, input *SignOutInput) error
}

// Service defines the interface for authentication operations
type Service interface {
	Provider

	// SignUp registers a new account with a member profile and signs it in
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// SignIn verifies credentials and issues a session
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// Authenticate resolves a request token to an actor. Any failure
	// leaves the request anonymous.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
}
