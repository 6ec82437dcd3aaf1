package roster

// RosterError is a custom error type for roster errors
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMemberNotFound   RosterError = "member not found"
	ErrSquadNotFound    RosterError = "squad not found"
	ErrInvalidRole      RosterError = "invalid role"
	ErrEmptySquadName   RosterError = "squad name cannot be empty"
	ErrNilConfig        RosterError = "config cannot be nil"
	ErrNilProfileRepo   RosterError = "profile repository cannot be nil"
	ErrNilSquadRepo     RosterError = "squad repository cannot be nil"
	ErrNilActivityRepo  RosterError = "activity repository cannot be nil"
	ErrNilClock         RosterError = "clock cannot be nil"
	ErrNilUUIDGenerator RosterError = "UUID generator cannot be nil"
)
