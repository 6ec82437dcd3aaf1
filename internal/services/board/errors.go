package board

// BoardError is a custom error type for notice board errors
type BoardError string

// Error implements the error interface
func (e BoardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyTitle       BoardError = "title cannot be empty"
	ErrEmptyRuleText    BoardError = "rule text cannot be empty"
	ErrInvalidType      BoardError = "invalid notice type"
	ErrNilConfig        BoardError = "config cannot be nil"
	ErrNilBoardRepo     BoardError = "board repository cannot be nil"
	ErrNilActivityRepo  BoardError = "activity repository cannot be nil"
	ErrNilClock         BoardError = "clock cannot be nil"
	ErrNilUUIDGenerator BoardError = "UUID generator cannot be nil"
)
