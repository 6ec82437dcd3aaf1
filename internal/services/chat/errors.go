package chat

// ChatError is a custom error type for chat errors
type ChatError string

// Error implements the error interface
func (e ChatError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyMessage     ChatError = "message cannot be empty"
	ErrNotSquadMember   ChatError = "not a member of this squad"
	ErrNilConfig        ChatError = "config cannot be nil"
	ErrNilMessageRepo   ChatError = "message repository cannot be nil"
	ErrNilClock         ChatError = "clock cannot be nil"
	ErrNilUUIDGenerator ChatError = "UUID generator cannot be nil"
)
