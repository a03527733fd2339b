package handler

import (
	"community-connect-be/internal/pkg/logger"
	"community-connect-be/internal/service"
	internalWS "community-connect-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// VoiceHandler upgrades /ws/voice connections and hands them to the hub.
// There is no authentication; the session id only groups devices of the same
// anonymous visitor.
type VoiceHandler struct {
	hub          *internalWS.Hub
	voiceService service.IVoiceService
	logger       logger.ILogger
}

func NewVoiceHandler(hub *internalWS.Hub, voiceService service.IVoiceService, log logger.ILogger) *VoiceHandler {
	return &VoiceHandler{
		hub:          hub,
		voiceService: voiceService,
		logger:       log,
	}
}

func (h *VoiceHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/ws/voice", h.ServeWs)
}

func (h *VoiceHandler) ServeWs(c *fiber.Ctx) error {
	// Feature-detect: when voice is disabled the endpoint reports so instead
	// of accepting sessions that can never produce commands.
	if !h.voiceService.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Voice commands are disabled"})
	}

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = c.Get("X-Session-Id")
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	// Upgrade via Fiber WebSocket Middleware
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("VoiceHandler", "Starting voice session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID, h.voiceService)
			h.logger.Info("VoiceHandler", "Voice session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
