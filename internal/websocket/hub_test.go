package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func waitForClientCount(t *testing.T, hub *Hub, userID uuid.UUID, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[userID]) == want
	}, time.Second, 5*time.Millisecond)
}

func TestSendReachesEveryConnectionOfUser(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userID := uuid.New()
	first := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	second := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	hub.register <- first
	hub.register <- second
	waitForClientCount(t, hub, userID, 2)

	hub.Send(userID, map[string]string{"action": "meeting.created"})

	want := `{"type":"meeting_event","data":{"action":"meeting.created"}}`
	assert.JSONEq(t, want, string(<-first.Send))
	assert.JSONEq(t, want, string(<-second.Send))
}

func TestStalledClientIsDroppedWithoutKillingHub(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userID := uuid.New()
	// No reader and no buffer, so the first Send hits the full-buffer path.
	stalled := &Client{Hub: hub, UserID: userID, Send: make(chan []byte)}
	hub.register <- stalled
	waitForClientCount(t, hub, userID, 1)

	hub.Send(userID, map[string]string{"action": "meeting.updated"})
	waitForClientCount(t, hub, userID, 0)

	// The hub closed the channel exactly once, on unregister.
	_, open := <-stalled.Send
	assert.False(t, open)

	// readPump's teardown signals unregister again when the socket drops.
	// The client is already gone, so this must not close Send a second time.
	hub.unregister <- stalled

	// The hub goroutine survived both passes and still serves new clients.
	healthy := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	hub.register <- healthy
	waitForClientCount(t, hub, userID, 1)

	hub.Send(userID, map[string]string{"action": "meeting.deleted"})
	assert.NotEmpty(t, <-healthy.Send)
}
