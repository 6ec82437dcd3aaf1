package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/grading"
	"github.com/stbguild/guildhall/internal/services/roster"
)

type addMemberRequest struct {
	FullName string      `json:"full_name"`
	GameID   string      `json:"game_id"`
	Role     models.Role `json:"role,omitempty"`
}

type updateMemberRequest struct {
	FullName string              `json:"full_name"`
	GameID   string              `json:"game_id"`
	Stats    *models.PlayerStats `json:"stats,omitempty"`
}

type updateRoleRequest struct {
	Role        models.Role         `json:"role"`
	Permissions *models.Permissions `json:"permissions,omitempty"`
}

type setBannedRequest struct {
	Banned bool `json:"banned"`
}

type createSquadRequest struct {
	Name     string `json:"name"`
	LeaderID string `json:"leader_id"`
}

type assignToSquadRequest struct {
	SquadID string `json:"squad_id"`
}

type setSquadLeaderRequest struct {
	LeaderID string `json:"leader_id"`
}

type membersResponse struct {
	Members []*models.Profile `json:"members"`
}

type memberResponse struct {
	Member *models.Profile `json:"member"`
}

type squadsResponse struct {
	Squads []*models.Squad `json:"squads"`
}

type squadResponse struct {
	Squad *models.Squad `json:"squad"`
}

type gradeResponse struct {
	Grade   string          `json:"grade"`
	Summary string          `json:"summary"`
	Member  *models.Profile `json:"member"`
}

func (h *Handler) handleListMembers(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	out, err := h.rosterService.ListMembers(r.Context(), &roster.ListMembersInput{Actor: actor})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &membersResponse{Members: out.Members})
}

func (h *Handler) handleAddMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req addMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.rosterService.AddMember(r.Context(), &roster.AddMemberInput{
		Actor:    actor,
		FullName: req.FullName,
		GameID:   req.GameID,
		Role:     req.Role,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &memberResponse{Member: out.Member})
}

func (h *Handler) handleGetMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	out, err := h.rosterService.GetMember(r.Context(), &roster.GetMemberInput{
		Actor:    actor,
		MemberID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &memberResponse{Member: out.Member})
}

func (h *Handler) handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req updateMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.rosterService.UpdateMember(r.Context(), &roster.UpdateMemberInput{
		Actor:    actor,
		MemberID: mux.Vars(r)["id"],
		FullName: req.FullName,
		GameID:   req.GameID,
		Stats:    req.Stats,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &memberResponse{Member: out.Member})
}

func (h *Handler) handleUpdateRole(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req updateRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.rosterService.UpdateRole(r.Context(), &roster.UpdateRoleInput{
		Actor:       actor,
		MemberID:    mux.Vars(r)["id"],
		Role:        req.Role,
		Permissions: req.Permissions,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &memberResponse{Member: out.Member})
}

func (h *Handler) handleSetBanned(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req setBannedRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.rosterService.SetBanned(r.Context(), &roster.SetBannedInput{
		Actor:    actor,
		MemberID: mux.Vars(r)["id"],
		Banned:   req.Banned,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &memberResponse{Member: out.Member})
}

func (h *Handler) handleAssignToSquad(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req assignToSquadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.rosterService.AssignToSquad(r.Context(), &roster.AssignToSquadInput{
		Actor:    actor,
		MemberID: mux.Vars(r)["id"],
		SquadID:  req.SquadID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &memberResponse{Member: out.Member})
}

func (h *Handler) handleGradeMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	out, err := h.gradingService.GradeMember(r.Context(), &grading.GradeMemberInput{
		Actor:    actor,
		MemberID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &gradeResponse{
		Grade:   out.Grade,
		Summary: out.Summary,
		Member:  out.Member,
	})
}

func (h *Handler) handleListSquads(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	out, err := h.rosterService.ListSquads(r.Context(), &roster.ListSquadsInput{Actor: actor})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &squadsResponse{Squads: out.Squads})
}

func (h *Handler) handleCreateSquad(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req createSquadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.rosterService.CreateSquad(r.Context(), &roster.CreateSquadInput{
		Actor:     actor,
		SquadName: req.Name,
		LeaderID:  req.LeaderID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &squadResponse{Squad: out.Squad})
}

func (h *Handler) handleSetSquadLeader(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req setSquadLeaderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.rosterService.SetSquadLeader(r.Context(), &roster.SetSquadLeaderInput{
		Actor:    actor,
		SquadID:  mux.Vars(r)["id"],
		LeaderID: req.LeaderID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &squadResponse{Squad: out.Squad})
}
