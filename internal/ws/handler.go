package ws

import (
	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Handler upgrades /ws/matches requests and attaches them to the hub.
type Handler struct {
	hub      *Hub
	logger   *zap.Logger
	upgrader websocket.FastHTTPUpgrader
}

func NewHandler(hub *Hub, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		hub:    hub,
		logger: logger.Named("ws"),
		upgrader: websocket.FastHTTPUpgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients are served from several deployments; CORS is open too.
			CheckOrigin: func(*fasthttp.RequestCtx) bool { return true },
		},
	}
}

// HandleMatchesWS streams match and sync events to browser clients.
func (h *Handler) HandleMatchesWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}
	if !websocket.FastHTTPIsWebSocketUpgrade(c.RequestCtx()) {
		return fiber.ErrUpgradeRequired
	}

	// c is recycled once the handler returns; the hijacked connection outlives it.
	remote := c.IP()
	err := h.upgrader.Upgrade(c.RequestCtx(), func(conn *websocket.Conn) {
		h.serve(conn, remote)
	})
	if err != nil {
		// The upgrader has already written the handshake failure.
		h.logger.Warn("ws upgrade failed", zap.String("remote", remote), zap.Error(err))
	}
	return nil
}

// serve blocks for the life of the connection.
func (h *Handler) serve(conn *websocket.Conn, remote string) {
	client := NewClient(h.hub, conn)
	if !h.hub.Register(client) {
		_ = conn.Close()
		return
	}
	h.logger.Debug("ws client connected", zap.String("remote", remote))

	go client.WritePump()
	client.ReadPump()
	h.logger.Debug("ws client disconnected", zap.String("remote", remote))
}
