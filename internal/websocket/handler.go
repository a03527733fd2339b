package websocket

import (
	"community-connect-be/internal/service"

	"github.com/gofiber/websocket/v2"
)

// ServeWs handles a voice websocket connection for one visitor session.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID string, voiceService service.IVoiceService) {
	client := &Client{
		Hub:       hub,
		Conn:      c,
		SessionID: sessionID,
		Send:      make(chan []byte, 256),
	}
	client.Voice = voiceService.Open(sessionID, func(frame interface{}) {
		hub.Send(sessionID, frame)
	})
	client.Hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
