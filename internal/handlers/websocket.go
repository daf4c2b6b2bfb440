package handlers

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/mcalvert/outings-api/internal/logger"
	"github.com/mcalvert/outings-api/internal/middleware"
)

// Event types sent over WebSocket
const (
	EventActivityCreated  = "activity_created"
	EventActivityUpdated  = "activity_updated"
	EventActivityArchived = "activity_archived"
	EventActivityDeleted  = "activity_deleted"
	EventNoteCreated      = "note_created"
	EventNoteUpdated      = "note_updated"
	EventNoteDeleted      = "note_deleted"
	EventCommentAdded     = "comment_added"
	EventCommentUpdated   = "comment_updated"
	EventCommentDeleted   = "comment_deleted"
)

// WSEvent is the JSON message sent to connected clients
type WSEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// connection wraps a websocket connection with a write lock. Broadcasts
// from different handlers can land on the same connection concurrently,
// and the websocket library forbids overlapping writes.
type connection struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *connection) write(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub fans change events out to a user's open connections, so a second
// browser tab or device sees writes made in the first.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]map[*connection]bool // userID -> set of connections
}

// Global hub instance
var WS = &Hub{
	rooms: make(map[uuid.UUID]map[*connection]bool),
}

func (h *Hub) register(userID uuid.UUID, conn *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[userID] == nil {
		h.rooms[userID] = make(map[*connection]bool)
	}
	h.rooms[userID][conn] = true
	logger.Log.Debug().Str("userId", userID.String()).Int("connections", len(h.rooms[userID])).Msg("ws connected")
}

func (h *Hub) unregister(userID uuid.UUID, conn *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.rooms[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, userID)
		}
	}
	logger.Log.Debug().Str("userId", userID.String()).Msg("ws disconnected")
}

// Broadcast sends an event to every connection the user has open.
func (h *Hub) Broadcast(userID uuid.UUID, event WSEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.rooms[userID]
	if !ok {
		return
	}

	msg, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error().Err(err).Str("type", event.Type).Msg("ws marshal failed")
		return
	}

	for c := range conns {
		if err := c.write(msg); err != nil {
			logger.Log.Warn().Err(err).Str("userId", userID.String()).Msg("ws write failed")
		}
	}
}

// WebSocketUpgrade checks the upgrade request and validates the JWT. The
// token arrives as a ?token= query param from browsers, or a bearer
// header from other clients.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		tokenString := c.Query("token")
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				tokenString = ""
			}
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authentication token",
			})
		}

		claims, err := middleware.ParseToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("userId", claims.UserID)
		return c.Next()
	}
}

// HandleWebSocket keeps a client connection registered until it drops.
func HandleWebSocket(c *websocket.Conn) {
	userID, ok := c.Locals("userId").(uuid.UUID)
	if !ok {
		c.Close()
		return
	}

	conn := &connection{conn: c}
	WS.register(userID, conn)
	defer WS.unregister(userID, conn)

	// Read loop only services client keepalives.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
