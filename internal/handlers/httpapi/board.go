package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/board"
)

type postNoticeRequest struct {
	Title   string            `json:"title"`
	Content string            `json:"content"`
	Type    models.NoticeType `json:"type"`
}

type createEventRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	EventDate   *time.Time         `json:"event_date,omitempty"`
	Status      models.EventStatus `json:"status,omitempty"`
}

type addRuleRequest struct {
	RuleText string `json:"rule_text"`
	Category string `json:"category"`
}

type noticesResponse struct {
	Notices []*models.Notice `json:"notices"`
}

type noticeResponse struct {
	Notice *models.Notice `json:"notice"`
}

type eventsResponse struct {
	Events []*models.Event `json:"events"`
}

type eventResponse struct {
	Event *models.Event `json:"event"`
}

type rulesResponse struct {
	Rules []*models.GuildRule `json:"rules"`
}

type ruleResponse struct {
	Rule *models.GuildRule `json:"rule"`
}

type siteSettingsResponse struct {
	Settings *models.SiteSettings `json:"settings"`
}

type guildConfigResponse struct {
	Config *models.GuildConfig `json:"config"`
}

func (h *Handler) handleListNotices(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	out, err := h.boardService.ListNotices(r.Context(), &board.ListNoticesInput{
		Actor: actor,
		Limit: limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &noticesResponse{Notices: out.Notices})
}

func (h *Handler) handlePostNotice(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req postNoticeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.boardService.PostNotice(r.Context(), &board.PostNoticeInput{
		Actor:   actor,
		Title:   req.Title,
		Content: req.Content,
		Type:    req.Type,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &noticeResponse{Notice: out.Notice})
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	out, err := h.boardService.ListEvents(r.Context(), &board.ListEventsInput{Actor: actor})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &eventsResponse{Events: out.Events})
}

func (h *Handler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req createEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.boardService.CreateEvent(r.Context(), &board.CreateEventInput{
		Actor:       actor,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Status:      req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &eventResponse{Event: out.Event})
}

func (h *Handler) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	_, err := h.boardService.DeleteEvent(r.Context(), &board.DeleteEventInput{
		Actor:   actor,
		EventID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleListRules(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	out, err := h.boardService.ListRules(r.Context(), &board.ListRulesInput{Actor: actor})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &rulesResponse{Rules: out.Rules})
}

func (h *Handler) handleAddRule(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req addRuleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.boardService.AddRule(r.Context(), &board.AddRuleInput{
		Actor:    actor,
		RuleText: req.RuleText,
		Category: req.Category,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &ruleResponse{Rule: out.Rule})
}

func (h *Handler) handleDeleteRule(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	_, err := h.boardService.DeleteRule(r.Context(), &board.DeleteRuleInput{
		Actor:  actor,
		RuleID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

// handleGetSiteSettings serves the public branding payload; it is the
// one endpoint that stays open to anonymous requests.
func (h *Handler) handleGetSiteSettings(w http.ResponseWriter, r *http.Request) {
	out, err := h.boardService.GetSiteSettings(r.Context(), &board.GetSiteSettingsInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &siteSettingsResponse{Settings: out.Settings})
}

func (h *Handler) handleUpdateSiteSettings(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var settings models.SiteSettings
	if !decodeBody(w, r, &settings) {
		return
	}

	out, err := h.boardService.UpdateSiteSettings(r.Context(), &board.UpdateSiteSettingsInput{
		Actor:    actor,
		Settings: &settings,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &siteSettingsResponse{Settings: out.Settings})
}

func (h *Handler) handleGetGuildConfig(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	out, err := h.boardService.GetGuildConfig(r.Context(), &board.GetGuildConfigInput{Actor: actor})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &guildConfigResponse{Config: out.Config})
}

func (h *Handler) handleUpdateGuildConfig(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var config models.GuildConfig
	if !decodeBody(w, r, &config) {
		return
	}

	out, err := h.boardService.UpdateGuildConfig(r.Context(), &board.UpdateGuildConfigInput{
		Actor:  actor,
		Config: &config,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &guildConfigResponse{Config: out.Config})
}
