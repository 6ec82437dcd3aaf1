package dashboard

// DashboardError is a custom error type for dashboard errors
type DashboardError string

// Error implements the error interface
func (e DashboardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         DashboardError = "config cannot be nil"
	ErrNilProfileRepo    DashboardError = "profile repository cannot be nil"
	ErrNilSquadRepo      DashboardError = "squad repository cannot be nil"
	ErrNilTournamentRepo DashboardError = "tournament repository cannot be nil"
	ErrNilBoardRepo      DashboardError = "board repository cannot be nil"
	ErrNilActivityRepo   DashboardError = "activity repository cannot be nil"
)
