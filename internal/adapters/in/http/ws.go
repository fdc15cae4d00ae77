package http

import (
	"log/slog"

	"swiftbid/internal/adapters/out/notify"
	"swiftbid/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// WSHandler upgrades connections and registers them with the notification
// hub so status changes reach the browser without polling.
type WSHandler struct {
	hub      *notify.WebSocketHub
	upgrader websocket.Upgrader
}

// NewWSHandler creates the WebSocket endpoint handler over the given hub.
func NewWSHandler(hub *notify.WebSocketHub) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes attaches the WebSocket route to the echo instance.
func (h *WSHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.Subscribe)
}

// Subscribe handles GET /ws - holds the connection open and streams status
// events for the identified user. Identity comes from the gateway header or,
// for browser clients that cannot set headers on the handshake, the user_id
// query parameter.
func (h *WSHandler) Subscribe(ctx echo.Context) error {
	raw := ctx.Request().Header.Get(userIDHeader)
	if raw == "" {
		raw = ctx.QueryParam("user_id")
	}

	userID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return writeUnauthenticated(ctx, "Missing or invalid user identity")
	}

	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	h.hub.Register(userID.String(), conn)
	defer func() {
		h.hub.Unregister(userID.String(), conn)
		_ = conn.Close()
	}()

	// The stream is push-only. Reading drains control frames and detects
	// the peer going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.DebugContext(ctx.Request().Context(), "websocket closed",
					"user_id", userID.String(), "error", err)
			}
			return nil
		}
	}
}
