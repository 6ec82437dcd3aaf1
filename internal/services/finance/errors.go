package finance

// FinanceError is a custom error type for finance errors
type FinanceError string

// Error implements the error interface
func (e FinanceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidAmount    FinanceError = "amount must be positive"
	ErrInvalidType      FinanceError = "invalid transaction type"
	ErrNilConfig        FinanceError = "config cannot be nil"
	ErrNilFinanceRepo   FinanceError = "finance repository cannot be nil"
	ErrNilActivityRepo  FinanceError = "activity repository cannot be nil"
	ErrNilClock         FinanceError = "clock cannot be nil"
	ErrNilUUIDGenerator FinanceError = "UUID generator cannot be nil"
)
