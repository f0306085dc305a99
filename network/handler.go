package network

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"pong/protocol"
	"pong/room"
)

// Handler terminates websocket sessions and hands them to the room registry.
// One upgraded connection is one session for its whole lifetime.
type Handler struct {
	registry *room.Registry
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewHandler(registry *room.Registry, logger *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The renderer is served from a different origin during
			// dev. Lock this down in prod.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Routes wires the websocket endpoint, the liveness text, and a room
// listing for debugging.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", h.ServeWS)
	mux.HandleFunc("GET /rooms", h.handleRooms)
	mux.HandleFunc("GET /", h.handleRoot)
	return mux
}

// ServeWS upgrades the connection, assigns a fresh session id, seats the
// session in a room, and then relays paddle intents until the connection
// dies. Malformed frames are dropped without closing the session.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	sessionID := uuid.NewString()
	client := newClient(conn, h.logger)
	rm := h.registry.Assign(sessionID, client)
	h.logger.Info("session connected", "session", sessionID, "room", rm.Name())

	defer func() {
		h.registry.Release(rm, sessionID)
		_ = client.Close()
		h.logger.Info("session disconnected", "session", sessionID, "room", rm.Name())
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.logger.Warn("websocket read", "session", sessionID, "error", err)
			}
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			continue
		}
		switch env.T {
		case protocol.MsgPaddleMove:
			pm, err := protocol.DecodePayload[protocol.PaddleMove](env)
			if err != nil {
				continue
			}
			rm.Inbox <- room.PaddleMove{SessionID: sessionID, Y: pm.Y}
		default:
			h.logger.Debug("unknown client event", "session", sessionID, "type", env.T)
		}
	}
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Pong Backend Running"))
}

func (h *Handler) handleRooms(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.registry.Rooms()); err != nil {
		h.logger.Error("encode room listing", "error", err)
	}
}
