package httpapi

import (
	"net/http"
	"strconv"

	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/chat"
)

type sendMessageRequest struct {
	SquadID string `json:"squad_id,omitempty"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Messages []*models.Message `json:"messages"`
}

type messageResponse struct {
	Message *models.Message `json:"message"`
}

func (h *Handler) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	out, err := h.chatService.GetHistory(r.Context(), &chat.GetHistoryInput{
		Actor:   actor,
		SquadID: r.URL.Query().Get("squad_id"),
		Limit:   limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &messagesResponse{Messages: out.Messages})
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req sendMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.chatService.SendMessage(r.Context(), &chat.SendMessageInput{
		Actor:   actor,
		SquadID: req.SquadID,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.hub.publish(out.Message)

	writeJSON(w, http.StatusCreated, &messageResponse{Message: out.Message})
}
