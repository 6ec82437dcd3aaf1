package models

import (
	"time"
)

// PaymentStatus represents the state of a slot booking payment
type PaymentStatus string

const (
	// PaymentStatusPending indicates a booking awaiting verification
	PaymentStatusPending PaymentStatus = "pending"

	// PaymentStatusVerified indicates a confirmed booking payment
	PaymentStatusVerified PaymentStatus = "verified"

	// PaymentStatusRejected indicates a rejected booking payment
	PaymentStatusRejected PaymentStatus = "rejected"
)

// TournamentSlot represents a booked slot in a tournament
type TournamentSlot struct {
	// ID is the unique identifier for the slot
	ID string `json:"id"`

	// TournamentName is the tournament the slot belongs to
	TournamentName string `json:"tournament_name"`

	// SlotNumber is the sequential slot position
	SlotNumber int `json:"slot_number"`

	// BookedBy is the profile ID of the member who booked the slot
	BookedBy string `json:"booked_by"`

	// BookedByName is the display name of the booking member
	BookedByName string `json:"booked_by_name,omitempty"`

	// PaymentStatus is the state of the booking payment
	PaymentStatus PaymentStatus `json:"payment_status"`

	// IsExternalPlayer indicates a booking by a non-guild player
	IsExternalPlayer bool `json:"is_external_player"`

	// CreatedAt is when the slot was booked
	CreatedAt time.Time `json:"created_at"`
}

// MatchResult records the outcome of a played tournament match
type MatchResult struct {
	// ID is the unique identifier for the match record
	ID string `json:"id"`

	// TournamentName is the tournament the match belongs to
	TournamentName string `json:"tournament_name"`

	// MatchType describes the bracket stage or match format
	MatchType string `json:"match_type"`

	// TeamA is the first team's name
	TeamA string `json:"team_a"`

	// TeamB is the second team's name
	TeamB string `json:"team_b"`

	// ScoreA is the first team's score
	ScoreA int `json:"score_a"`

	// ScoreB is the second team's score
	ScoreB int `json:"score_b"`

	// Winner is the winning team's name
	Winner string `json:"winner"`

	// MVP is the standout player of the match, if named
	MVP string `json:"mvp,omitempty"`

	// MatchDate is when the match was played
	MatchDate time.Time `json:"match_date"`
}
