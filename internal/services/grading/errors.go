package grading

// GradingError is a custom error type for grading errors
type GradingError string

// Error implements the error interface
func (e GradingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMemberNotFound GradingError = "member not found"
	ErrNoStats        GradingError = "member has no recorded stats"
	ErrNilConfig      GradingError = "config cannot be nil"
	ErrNilProfileRepo GradingError = "profile repository cannot be nil"
	ErrNilClock       GradingError = "clock cannot be nil"
)
