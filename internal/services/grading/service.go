package grading

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/stbguild/guildhall/internal/common/clock"
	"github.com/stbguild/guildhall/internal/models"
	profileRepo "github.com/stbguild/guildhall/internal/repositories/profile"
	"github.com/stbguild/guildhall/internal/services/auth"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"

	// fallbackGrade is used whenever the model cannot be reached or
	// answers with something that is not a grade
	fallbackGrade = "C"

	// fallbackSummary accompanies the fallback grade
	fallbackSummary = "Automated analysis was unavailable, assigned an average grade."
)

// Config holds configuration for the grading service
type Config struct {
	ProfileRepo profileRepo.Repository
	Clock       clock.Clock

	// APIKey authorizes calls to the Gemini API; empty disables
	// remote grading and every request gets the fallback grade
	APIKey string

	// Model selects the Gemini model
	Model string

	// BaseURL overrides the Gemini endpoint, used in tests
	BaseURL string

	// HTTPClient is the client used for Gemini calls
	HTTPClient *http.Client
}

// service implements the Service interface
type service struct {
	profileRepo profileRepo.Repository
	clock       clock.Clock
	apiKey      string
	model       string
	baseURL     string
	httpClient  *http.Client
}

// New creates a new grading service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &service{
		profileRepo: cfg.ProfileRepo,
		clock:       cfg.Clock,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		baseURL:     cfg.BaseURL,
		httpClient:  cfg.HTTPClient,
	}, nil
}

// geminiRequest is the generateContent request body
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse is the subset of the generateContent response we read
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GradeMember grades a member's stats and stores the result on their
// profile. A broken or unreachable model never fails the operation;
// the member just gets the fallback grade.
func (s *service) GradeMember(ctx context.Context, input *GradeMemberInput) (*GradeMemberOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.CanAccess(models.CapabilityManageMembers) {
		return nil, auth.ErrForbidden
	}

	member, err := s.profileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		ProfileID: input.MemberID,
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if member.Stats == nil {
		return nil, ErrNoStats
	}

	grade, summary := s.requestGrade(ctx, member.Stats)

	member.Stats.Grade = grade
	member.UpdatedAt = s.clock.Now()

	err = s.profileRepo.SaveProfile(ctx, &profileRepo.SaveProfileInput{
		Profile: member,
	})
	if err != nil {
		return nil, err
	}

	return &GradeMemberOutput{
		Grade:   grade,
		Summary: summary,
		Member:  member,
	}, nil
}

// requestGrade asks Gemini for a letter grade and a one line
// assessment, falling back on any failure
func (s *service) requestGrade(ctx context.Context, stats *models.PlayerStats) (string, string) {
	if s.apiKey == "" {
		return fallbackGrade, fallbackSummary
	}

	prompt := fmt.Sprintf(
		"Grade this FPS player on the scale S, A, B, C, D where S is exceptional. "+
			"K/D ratio: %.2f, win rate: %.1f%%, headshot rate: %.1f%%. "+
			"Answer with the single letter on the first line and a one sentence "+
			"assessment on the second line.",
		stats.KD, stats.WinRate, stats.HSRate)

	body, err := json.Marshal(&geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		log.Printf("Failed to build grading request: %v", err)
		return fallbackGrade, fallbackSummary
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Printf("Failed to build grading request: %v", err)
		return fallbackGrade, fallbackSummary
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Grading call failed: %v", err)
		return fallbackGrade, fallbackSummary
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Grading call returned status %d", resp.StatusCode)
		return fallbackGrade, fallbackSummary
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Failed to read grading response: %v", err)
		return fallbackGrade, fallbackSummary
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		log.Printf("Failed to decode grading response: %v", err)
		return fallbackGrade, fallbackSummary
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return fallbackGrade, fallbackSummary
	}

	return parseAnswer(parsed.Candidates[0].Content.Parts[0].Text)
}

// parseAnswer splits a model answer into the letter grade and the
// assessment line
func parseAnswer(answer string) (string, string) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return fallbackGrade, fallbackSummary
	}

	grade := fallbackGrade
	switch strings.ToUpper(answer[:1]) {
	case "S", "A", "B", "C", "D":
		grade = strings.ToUpper(answer[:1])
	default:
		return fallbackGrade, fallbackSummary
	}

	summary := fallbackSummary
	if _, rest, found := strings.Cut(answer, "\n"); found {
		if rest = strings.TrimSpace(rest); rest != "" {
			summary = rest
		}
	}

	return grade, summary
}
