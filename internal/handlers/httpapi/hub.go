package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/auth"
	"github.com/stbguild/guildhall/internal/services/chat"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard frontend is served from another origin during
	// development, so origin checks are left to the deployment proxy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// hub fans chat messages out to connected websocket clients. Each
// client is pinned to one channel; messages only reach clients on the
// message's channel.
type hub struct {
	clients    map[*wsClient]bool
	register   chan *wsClient
	unregister chan *wsClient
	broadcast  chan *models.Message
}

func newHub() *hub {
	return &hub{
		clients:    make(map[*wsClient]bool),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		broadcast:  make(chan *models.Message, sendBuffer),
	}
}

func (h *hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.broadcast:
			payload, err := json.Marshal(message)
			if err != nil {
				log.Printf("Failed to encode chat message: %v", err)
				continue
			}

			for client := range h.clients {
				if client.squadID != message.SquadID {
					continue
				}

				select {
				case client.send <- payload:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// publish hands a stored message to the broadcast loop without
// blocking the HTTP request that produced it
func (h *hub) publish(message *models.Message) {
	select {
	case h.broadcast <- message:
	default:
		log.Printf("Chat broadcast queue full, dropping message %s", message.ID)
	}
}

// wsClient is one websocket connection pinned to a chat channel
type wsClient struct {
	handler *Handler
	conn    *websocket.Conn
	send    chan []byte

	actor   *auth.Actor
	squadID string
}

// inboundFrame is what clients send over the socket
type inboundFrame struct {
	Content string `json:"content"`
}

type errorFrame struct {
	Error string `json:"error"`
}

// handleChatSocket upgrades the connection and joins the requested
// channel. History access doubles as the channel authorization check,
// so a member cannot listen in on another squad's channel.
func (h *Handler) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	squadID := r.URL.Query().Get("squad_id")

	history, err := h.chatService.GetHistory(r.Context(), &chat.GetHistoryInput{
		Actor:   actor,
		SquadID: squadID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade chat connection: %v", err)
		return
	}

	client := &wsClient{
		handler: h,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		actor:   actor,
		squadID: squadID,
	}
	h.hub.register <- client

	if payload, err := json.Marshal(&messagesResponse{Messages: history.Messages}); err == nil {
		client.send <- payload
	}

	go client.writePump()
	go client.readPump()
}

func (c *wsClient) readPump() {
	defer func() {
		c.handler.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Chat connection closed unexpectedly: %v", err)
			}
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.sendError("invalid message frame")
			continue
		}

		out, err := c.handler.chatService.SendMessage(context.Background(), &chat.SendMessageInput{
			Actor:   c.actor,
			SquadID: c.squadID,
			Content: frame.Content,
		})
		if err != nil {
			c.sendError(err.Error())
			continue
		}

		c.handler.hub.publish(out.Message)
	}
}

func (c *wsClient) sendError(msg string) {
	payload, err := json.Marshal(&errorFrame{Error: msg})
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
