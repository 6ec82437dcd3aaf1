package httpapi

import (
	"net/http"

	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/auth"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	GameID   string `json:"game_id"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Session *models.Session `json:"session"`
	Profile *models.Profile `json:"profile"`
}

type meResponse struct {
	UserID      string              `json:"user_id"`
	Role        models.Role         `json:"role"`
	Permissions *models.Permissions `json:"permissions,omitempty"`
	Profile     *models.Profile     `json:"profile"`
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.authService.SignUp(r.Context(), &auth.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		GameID:   req.GameID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &sessionResponse{
		Session: out.Session,
		Profile: out.Profile,
	})
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.authService.SignIn(r.Context(), &auth.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &sessionResponse{
		Session: out.Session,
		Profile: out.Profile,
	})
}

func (h *Handler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, auth.ErrNotAuthenticated)
		return
	}

	if err := h.authService.SignOut(r.Context(), &auth.SignOutInput{Token: token}); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, &meResponse{
		UserID:      actor.UserID,
		Role:        actor.Role,
		Permissions: actor.Permissions,
		Profile:     actor.Profile,
	})
}
