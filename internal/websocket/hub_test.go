package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{}) {}
func (nopLogger) Warn(module, message string, details map[string]interface{}) {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error { return nil }

func (h *Hub) sessionClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func waitForCount(t *testing.T, h *Hub, sessionID string, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if h.sessionClientCount(sessionID) == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("session %q holds %d clients, want %d", sessionID, h.sessionClientCount(sessionID), want)
}

func TestSendDropsStalledClientWithoutPanic(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	client := &Client{Hub: hub, SessionID: "s1", Send: make(chan []byte, 1)}
	client.Send <- []byte("backlog") // buffer full, next delivery must drop

	hub.register <- client
	waitForCount(t, hub, "s1", 1)

	// The stalled client is dropped and unregistered; closing its channel
	// twice would panic here.
	hub.Send("s1", map[string]string{"type": "feedback"})
	waitForCount(t, hub, "s1", 0)

	// Channel was closed exactly once by the unregister handler.
	<-client.Send
	_, ok := <-client.Send
	assert.False(t, ok, "client Send channel must be closed after drop")

	// Further sends to the emptied session are a no-op.
	hub.Send("s1", map[string]string{"type": "feedback"})
}

func TestSendReachesEveryDeviceOfSession(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	a := &Client{Hub: hub, SessionID: "s2", Send: make(chan []byte, 4)}
	b := &Client{Hub: hub, SessionID: "s2", Send: make(chan []byte, 4)}
	hub.register <- a
	hub.register <- b
	waitForCount(t, hub, "s2", 2)

	hub.Send("s2", map[string]string{"type": "navigate", "route": "home"})

	for _, c := range []*Client{a, b} {
		select {
		case data := <-c.Send:
			assert.Contains(t, string(data), `"route":"home"`)
		case <-time.After(time.Second):
			t.Fatal("device did not receive the session frame")
		}
	}
}
