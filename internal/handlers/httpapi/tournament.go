package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/tournament"
)

type bookSlotRequest struct {
	TournamentName   string `json:"tournament_name"`
	BookedByName     string `json:"booked_by_name,omitempty"`
	IsExternalPlayer bool   `json:"is_external_player,omitempty"`
}

type setPaymentStatusRequest struct {
	Status models.PaymentStatus `json:"status"`
}

type recordMatchResultRequest struct {
	TournamentName string    `json:"tournament_name"`
	MatchType      string    `json:"match_type"`
	TeamA          string    `json:"team_a"`
	TeamB          string    `json:"team_b"`
	ScoreA         int       `json:"score_a"`
	ScoreB         int       `json:"score_b"`
	Winner         string    `json:"winner"`
	MVP            string    `json:"mvp,omitempty"`
	MatchDate      time.Time `json:"match_date,omitempty"`
}

type slotsResponse struct {
	Slots    []*models.TournamentSlot `json:"slots"`
	Booked   int                      `json:"booked"`
	Capacity int                      `json:"capacity,omitempty"`
}

type slotResponse struct {
	Slot *models.TournamentSlot `json:"slot"`
}

type matchesResponse struct {
	Matches []*models.MatchResult `json:"matches"`
}

type matchResponse struct {
	Match *models.MatchResult `json:"match"`
}

func (h *Handler) handleListSlots(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	out, err := h.tournamentService.ListSlots(r.Context(), &tournament.ListSlotsInput{Actor: actor})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &slotsResponse{
		Slots:    out.Slots,
		Booked:   out.Booked,
		Capacity: out.Capacity,
	})
}

func (h *Handler) handleBookSlot(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req bookSlotRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.tournamentService.BookSlot(r.Context(), &tournament.BookSlotInput{
		Actor:            actor,
		TournamentName:   req.TournamentName,
		BookedByName:     req.BookedByName,
		IsExternalPlayer: req.IsExternalPlayer,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &slotResponse{Slot: out.Slot})
}

func (h *Handler) handleSetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req setPaymentStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.tournamentService.SetPaymentStatus(r.Context(), &tournament.SetPaymentStatusInput{
		Actor:  actor,
		SlotID: mux.Vars(r)["id"],
		Status: req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &slotResponse{Slot: out.Slot})
}

func (h *Handler) handleListMatchResults(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	out, err := h.tournamentService.ListMatchResults(r.Context(), &tournament.ListMatchResultsInput{Actor: actor})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &matchesResponse{Matches: out.Matches})
}

func (h *Handler) handleRecordMatchResult(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req recordMatchResultRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.tournamentService.RecordMatchResult(r.Context(), &tournament.RecordMatchResultInput{
		Actor:          actor,
		TournamentName: req.TournamentName,
		MatchType:      req.MatchType,
		TeamA:          req.TeamA,
		TeamB:          req.TeamB,
		ScoreA:         req.ScoreA,
		ScoreB:         req.ScoreB,
		Winner:         req.Winner,
		MVP:            req.MVP,
		MatchDate:      req.MatchDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &matchResponse{Match: out.Match})
}
