package auth

// AuthError is a custom error type for authentication errors
type AuthError string

// Error implements the error interface
func (e AuthError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidCredentials     AuthError = "invalid email or password"
	ErrEmailAlreadyRegistered AuthError = "email is already registered"
	ErrAccountBanned          AuthError = "account is banned"
	ErrNotAuthenticated       AuthError = "not authenticated"
	ErrForbidden              AuthError = "insufficient role"
	ErrProfileNotFound        AuthError = "profile not found for session"
	ErrPasswordTooShort       AuthError = "password is too short"
	ErrNilConfig              AuthError = "config cannot be nil"
	ErrNilAccountRepo         AuthError = "account repository cannot be nil"
	ErrNilProfileRepo         AuthError = "profile repository cannot be nil"
	ErrNilClock               AuthError = "clock cannot be nil"
	ErrNilUUIDGenerator       AuthError = "UUID generator cannot be nil"
)
