package httpapi

import (
	"net/http"
	"strconv"

	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/dashboard"
)

type overviewResponse struct {
	MemberCount   int                 `json:"member_count"`
	SquadCount    int                 `json:"squad_count"`
	SlotsBooked   int                 `json:"slots_booked"`
	GuildConfig   *models.GuildConfig `json:"guild_config"`
	RecentNotices []*models.Notice    `json:"recent_notices"`
}

type activityResponse struct {
	Entries []*models.ActivityEntry `json:"entries"`
}

func (h *Handler) handleGetOverview(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	out, err := h.dashboardService.GetOverview(r.Context(), &dashboard.GetOverviewInput{Actor: actor})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &overviewResponse{
		MemberCount:   out.MemberCount,
		SquadCount:    out.SquadCount,
		SlotsBooked:   out.SlotsBooked,
		GuildConfig:   out.GuildConfig,
		RecentNotices: out.RecentNotices,
	})
}

func (h *Handler) handleListActivity(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	out, err := h.dashboardService.ListActivity(r.Context(), &dashboard.ListActivityInput{
		Actor: actor,
		Limit: limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &activityResponse{Entries: out.Entries})
}
