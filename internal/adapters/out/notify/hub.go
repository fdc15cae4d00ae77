package notify

import (
	"context"
	"log/slog"
	"sync"

	"swiftbid/internal/core/domain/events"

	"github.com/gorilla/websocket"
)

// wsSession wraps one WebSocket connection. gorilla/websocket permits only
// one concurrent writer per connection, so every write goes through the
// session mutex.
type wsSession struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *wsSession) send(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

// WebSocketHub tracks connected clients by user ID and pushes delivery
// status events to the parties involved: the customer always, the winning
// rider once a bid has been accepted.
type WebSocketHub struct {
	mu       sync.RWMutex
	sessions map[string]*wsSession
}

// NewWebSocketHub creates an empty hub.
func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{sessions: make(map[string]*wsSession)}
}

// Register attaches a connection under the given user ID, replacing any
// previous session for that user.
func (h *WebSocketHub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if prev, ok := h.sessions[userID]; ok {
		_ = prev.conn.Close()
	}
	h.sessions[userID] = &wsSession{conn: conn}
}

// Unregister removes the connection for the given user ID if it is still the
// registered one.
func (h *WebSocketHub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.sessions[userID]; ok && s.conn == conn {
		delete(h.sessions, userID)
	}
}

// Publish pushes the event to the delivery's customer and, on a match, to
// the winning rider. A party without an open connection is skipped silently;
// the socket is an extra on top of the queryable state, not the source of
// truth.
func (h *WebSocketHub) Publish(ctx context.Context, event events.DeliveryStatusChanged) error {
	msg := newStatusChangedMessage(event)

	recipients := []string{msg.CustomerID}
	if msg.WinningRiderID != nil {
		recipients = append(recipients, *msg.WinningRiderID)
	}

	var lastErr error
	for _, userID := range recipients {
		h.mu.RLock()
		s, ok := h.sessions[userID]
		h.mu.RUnlock()
		if !ok {
			continue
		}

		if err := s.send(msg); err != nil {
			slog.WarnContext(ctx, "websocket push failed",
				"user_id", userID, "error", err)
			lastErr = err
		}
	}

	return lastErr
}
