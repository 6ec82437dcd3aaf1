package tournament

// TournamentError is a custom error type for tournament errors
type TournamentError string

// Error implements the error interface
func (e TournamentError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSlotNotFound         TournamentError = "slot not found"
	ErrNoSlotsAvailable     TournamentError = "no slots available"
	ErrInvalidPaymentStatus TournamentError = "invalid payment status"
	ErrEmptyTournamentName  TournamentError = "tournament name cannot be empty"
	ErrNilConfig            TournamentError = "config cannot be nil"
	ErrNilTournamentRepo    TournamentError = "tournament repository cannot be nil"
	ErrNilActivityRepo      TournamentError = "activity repository cannot be nil"
	ErrNilClock             TournamentError = "clock cannot be nil"
	ErrNilUUIDGenerator     TournamentError = "UUID generator cannot be nil"
)
