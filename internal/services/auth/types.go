package auth

import (
	"github.com/stbguild/guildhall/internal/models"
)

// State is the resolver's view of the session lifecycle
type State string

const (
	// StateAnonymous means no session is active
	StateAnonymous State = "anonymous"

	// StateResolving means a session exists but its role lookup has
	// not completed yet
	StateResolving State = "resolving"

	// StateAuthenticated means the session's role and capabilities
	// are known
	StateAuthenticated State = "authenticated"

	// StateError means the role lookup failed; gates stay closed
	StateError State = "error"
)

// Snapshot is an immutable view of the resolver at one moment
type Snapshot struct {
	// State is the lifecycle state
	State State

	// Session is the active session, if any
	Session *models.Session

	// Role is the resolved role; empty unless authenticated
	Role models.Role

	// Permissions is the resolved capability bag; nil unless authenticated
	Permissions *models.Permissions

	// Err is the lookup failure when State is StateError
	Err error
}

// Actor is an authenticated principal attached to a request
type Actor struct {
	// UserID is the profile ID of the principal
	UserID string

	// Role is the principal's authority level
	Role models.Role

	// Permissions is the principal's capability bag; nil grants nothing
	Permissions *models.Permissions

	// Profile is the full profile record
	Profile *models.Profile
}

// IsAdmin reports whether the actor holds an admin-tier role
func (a *Actor) IsAdmin() bool {
	if a == nil {
		return false
	}
	return a.Role.IsAdmin()
}

// CanAccess reports whether the actor may use a capability. Super
// admins pass every capability gate.
func (a *Actor) CanAccess(c models.Capability) bool {
	if a == nil {
		return false
	}
	if a.Role == models.RoleSuperAdmin {
		return true
	}
	return a.Permissions.Allows(c)
}

// RequireRole returns ErrForbidden unless the actor holds the required
// role. Super admins satisfy any requirement; no other role satisfies
// a super admin requirement.
func (a *Actor) RequireRole(required models.Role) error {
	if a == nil {
		return ErrNotAuthenticated
	}
	if a.Role == models.RoleSuperAdmin {
		return nil
	}
	if !required.Valid() {
		return ErrForbidden
	}
	if a.Role != required {
		return ErrForbidden
	}
	return nil
}

// SignUpInput contains parameters for registering an account
type SignUpInput struct {
	Email    string
	Password string
	FullName string
	GameID   string
}

// SignUpOutput contains the result of registering an account
type SignUpOutput struct {
	Session *models.Session
	Profile *models.Profile
}

// SignInInput contains parameters for signing in
type SignInInput struct {
	Email    string
	Password string
}

// SignInOutput contains the result of signing in
type SignInOutput struct {
	Session *models.Session
	Profile *models.Profile
}

// SignOutInput contains parameters for signing out
type SignOutInput struct {
	// Token is the session to revoke. Empty revokes the provider's
	// current session.
	Token string
}

// AuthenticateInput contains parameters for resolving a request token
type AuthenticateInput struct {
	Token string
}

// AuthenticateOutput contains the result of resolving a request token
type AuthenticateOutput struct {
	Actor *Actor
}
