package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/stbguild/guildhall/internal/services/auth"
	"github.com/stbguild/guildhall/internal/services/board"
	"github.com/stbguild/guildhall/internal/services/chat"
	"github.com/stbguild/guildhall/internal/services/finance"
	"github.com/stbguild/guildhall/internal/services/grading"
	"github.com/stbguild/guildhall/internal/services/roster"
	"github.com/stbguild/guildhall/internal/services/tournament"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), &errorResponse{Error: err.Error()})
}

// statusFor maps service errors onto HTTP status codes. Unknown
// errors are reported as internal so repository failures never leak
// into an accidental grant or denial semantics.
func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, auth.ErrForbidden),
		errors.Is(err, auth.ErrAccountBanned),
		errors.Is(err, chat.ErrNotSquadMember):
		return http.StatusForbidden

	case errors.Is(err, roster.ErrMemberNotFound),
		errors.Is(err, roster.ErrSquadNotFound),
		errors.Is(err, tournament.ErrSlotNotFound),
		errors.Is(err, grading.ErrMemberNotFound),
		errors.Is(err, auth.ErrProfileNotFound):
		return http.StatusNotFound

	case errors.Is(err, auth.ErrEmailAlreadyRegistered),
		errors.Is(err, tournament.ErrNoSlotsAvailable):
		return http.StatusConflict

	case errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, roster.ErrInvalidRole),
		errors.Is(err, roster.ErrEmptySquadName),
		errors.Is(err, tournament.ErrInvalidPaymentStatus),
		errors.Is(err, tournament.ErrEmptyTournamentName),
		errors.Is(err, finance.ErrInvalidAmount),
		errors.Is(err, finance.ErrInvalidType),
		errors.Is(err, board.ErrEmptyTitle),
		errors.Is(err, board.ErrEmptyRuleText),
		errors.Is(err, board.ErrInvalidType),
		errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, grading.ErrNoStats):
		return http.StatusBadRequest
	}

	log.Printf("Unhandled service error: %v", err)
	return http.StatusInternalServerError
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
