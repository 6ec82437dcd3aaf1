package httpapi

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stbguild/guildhall/internal/services/auth"
	"github.com/stbguild/guildhall/internal/services/board"
	"github.com/stbguild/guildhall/internal/services/chat"
	"github.com/stbguild/guildhall/internal/services/dashboard"
	"github.com/stbguild/guildhall/internal/services/finance"
	"github.com/stbguild/guildhall/internal/services/grading"
	"github.com/stbguild/guildhall/internal/services/roster"
	"github.com/stbguild/guildhall/internal/services/tournament"
)

// Config holds the configuration for the HTTP API handler
type Config struct {
	AuthService       auth.Service
	RosterService     roster.Service
	TournamentService tournament.Service
	FinanceService    finance.Service
	BoardService      board.Service
	ChatService       chat.Service
	GradingService    grading.Service
	DashboardService  dashboard.Service
}

// Handler serves the dashboard's JSON API and the chat websocket
type Handler struct {
	authService       auth.Service
	rosterService     roster.Service
	tournamentService tournament.Service
	financeService    finance.Service
	boardService      board.Service
	chatService       chat.Service
	gradingService    grading.Service
	dashboardService  dashboard.Service

	hub *hub
}

// New creates a new HTTP API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.AuthService == nil {
		return nil, errors.New("auth service cannot be nil")
	}

	if cfg.RosterService == nil {
		return nil, errors.New("roster service cannot be nil")
	}

	if cfg.TournamentService == nil {
		return nil, errors.New("tournament service cannot be nil")
	}

	if cfg.FinanceService == nil {
		return nil, errors.New("finance service cannot be nil")
	}

	if cfg.BoardService == nil {
		return nil, errors.New("board service cannot be nil")
	}

	if cfg.ChatService == nil {
		return nil, errors.New("chat service cannot be nil")
	}

	if cfg.GradingService == nil {
		return nil, errors.New("grading service cannot be nil")
	}

	if cfg.DashboardService == nil {
		return nil, errors.New("dashboard service cannot be nil")
	}

	h := &Handler{
		authService:       cfg.AuthService,
		rosterService:     cfg.RosterService,
		tournamentService: cfg.TournamentService,
		financeService:    cfg.FinanceService,
		boardService:      cfg.BoardService,
		chatService:       cfg.ChatService,
		gradingService:    cfg.GradingService,
		dashboardService:  cfg.DashboardService,
	}
	h.hub = newHub()

	return h, nil
}

// Run starts the chat broadcast loop. Call once before serving.
func (h *Handler) Run() {
	go h.hub.run()
}

// Router builds the route table
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(h.withActor)

	api.HandleFunc("/auth/signup", h.handleSignUp).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin", h.handleSignIn).Methods(http.MethodPost)
	api.HandleFunc("/auth/signout", h.handleSignOut).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", h.handleMe).Methods(http.MethodGet)

	api.HandleFunc("/members", h.handleListMembers).Methods(http.MethodGet)
	api.HandleFunc("/members", h.handleAddMember).Methods(http.MethodPost)
	api.HandleFunc("/members/{id}", h.handleGetMember).Methods(http.MethodGet)
	api.HandleFunc("/members/{id}", h.handleUpdateMember).Methods(http.MethodPut)
	api.HandleFunc("/members/{id}/role", h.handleUpdateRole).Methods(http.MethodPut)
	api.HandleFunc("/members/{id}/ban", h.handleSetBanned).Methods(http.MethodPut)
	api.HandleFunc("/members/{id}/squad", h.handleAssignToSquad).Methods(http.MethodPut)
	api.HandleFunc("/members/{id}/grade", h.handleGradeMember).Methods(http.MethodPost)

	api.HandleFunc("/squads", h.handleListSquads).Methods(http.MethodGet)
	api.HandleFunc("/squads", h.handleCreateSquad).Methods(http.MethodPost)
	api.HandleFunc("/squads/{id}/leader", h.handleSetSquadLeader).Methods(http.MethodPut)

	api.HandleFunc("/slots", h.handleListSlots).Methods(http.MethodGet)
	api.HandleFunc("/slots", h.handleBookSlot).Methods(http.MethodPost)
	api.HandleFunc("/slots/{id}/payment", h.handleSetPaymentStatus).Methods(http.MethodPut)

	api.HandleFunc("/matches", h.handleListMatchResults).Methods(http.MethodGet)
	api.HandleFunc("/matches", h.handleRecordMatchResult).Methods(http.MethodPost)

	api.HandleFunc("/finance", h.handleGetLedger).Methods(http.MethodGet)
	api.HandleFunc("/finance", h.handleRecordTransaction).Methods(http.MethodPost)

	api.HandleFunc("/notices", h.handleListNotices).Methods(http.MethodGet)
	api.HandleFunc("/notices", h.handlePostNotice).Methods(http.MethodPost)

	api.HandleFunc("/events", h.handleListEvents).Methods(http.MethodGet)
	api.HandleFunc("/events", h.handleCreateEvent).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}", h.handleDeleteEvent).Methods(http.MethodDelete)

	api.HandleFunc("/rules", h.handleListRules).Methods(http.MethodGet)
	api.HandleFunc("/rules", h.handleAddRule).Methods(http.MethodPost)
	api.HandleFunc("/rules/{id}", h.handleDeleteRule).Methods(http.MethodDelete)

	api.HandleFunc("/site-settings", h.handleGetSiteSettings).Methods(http.MethodGet)
	api.HandleFunc("/site-settings", h.handleUpdateSiteSettings).Methods(http.MethodPut)

	api.HandleFunc("/guild-config", h.handleGetGuildConfig).Methods(http.MethodGet)
	api.HandleFunc("/guild-config", h.handleUpdateGuildConfig).Methods(http.MethodPut)

	api.HandleFunc("/overview", h.handleGetOverview).Methods(http.MethodGet)
	api.HandleFunc("/activity", h.handleListActivity).Methods(http.MethodGet)

	api.HandleFunc("/chat/messages", h.handleGetHistory).Methods(http.MethodGet)
	api.HandleFunc("/chat/messages", h.handleSendMessage).Methods(http.MethodPost)
	api.HandleFunc("/chat/ws", h.handleChatSocket).Methods(http.MethodGet)

	return r
}
