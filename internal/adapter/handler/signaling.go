package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/usecase/signaling"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Signaling upgrades HTTP connections to websockets and pumps messages
// into the relay hub
type Signaling struct {
	hub      *signaling.Hub
	upgrader websocket.Upgrader
	maxSize  int64
	logger   *zap.Logger
}

// NewSignaling creates a new signaling handler
func NewSignaling(hub *signaling.Hub, cfg *config.Config, logger *zap.Logger) *Signaling {
	allowed := make(map[string]struct{}, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		allowed[origin] = struct{}{}
	}

	return &Signaling{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				if _, ok := allowed["*"]; ok {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
		maxSize: cfg.Signaling.MaxMessageSize,
		logger:  logger,
	}
}

// Serve handles a websocket session from upgrade to disconnect
// @Summary      Signaling websocket
// @Description  WebRTC signaling relay; clients exchange join/offer/answer/candidate events
// @Tags         Signaling
// @Router       /ws [get]
func (h *Signaling) Serve(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("signaling.upgrade_failed", zap.Error(err))
		return err
	}
	conn.SetReadLimit(h.maxSize)

	client := h.hub.Register(conn)
	defer h.hub.Unregister(client)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("signaling.read_failed",
					zap.String("client_id", client.ID),
					zap.Error(err),
				)
			}
			return nil
		}
		h.hub.Dispatch(client, raw)
	}
}
