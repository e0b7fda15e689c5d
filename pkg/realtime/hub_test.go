package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(hub *Hub, garageID uuid.UUID) *Client {
	// No conn and no pumps; tests read the send channel directly.
	return &Client{
		GarageID: garageID,
		send:     make(chan []byte, 8),
		hub:      hub,
	}
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case data := <-c.send:
		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHubPublish(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	garageA := uuid.New()
	garageB := uuid.New()

	clientA := newTestClient(hub, garageA)
	clientB := newTestClient(hub, garageB)
	hub.register <- clientA
	hub.register <- clientB

	require.Eventually(t, func() bool { return hub.ClientCount() == 2 },
		time.Second, 10*time.Millisecond)

	hub.Publish(garageA, "booking_created", map[string]string{"code": "GRG-1"})

	event := receive(t, clientA)
	assert.Equal(t, "booking_created", event.Type)
	assert.Equal(t, garageA.String(), event.GarageID)

	// Events only reach clients watching the affected garage. clientA
	// receiving proves the broadcast was handled, so clientB's channel
	// is settled by now.
	assert.Empty(t, clientB.send)
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	garageID := uuid.New()
	first := newTestClient(hub, garageID)
	second := newTestClient(hub, garageID)
	hub.register <- first
	hub.register <- second

	require.Eventually(t, func() bool { return hub.ClientCount() == 2 },
		time.Second, 10*time.Millisecond)

	hub.Publish(garageID, "availability_changed", nil)

	assert.Equal(t, "availability_changed", receive(t, first).Type)
	assert.Equal(t, "availability_changed", receive(t, second).Type)
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	client := newTestClient(hub, uuid.New())
	hub.register <- client
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	hub.unregister <- client
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		time.Second, 10*time.Millisecond)

	// The hub closes the send channel on unregister.
	_, open := <-client.send
	assert.False(t, open)
}

func TestHubDropsWhenBacklogFull(t *testing.T) {
	// No Run goroutine, so the broadcast buffer fills up and further
	// publishes must not block.
	hub := NewHub(zap.NewNop())
	garageID := uuid.New()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish(garageID, "availability_changed", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full backlog")
	}
}
