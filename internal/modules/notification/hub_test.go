package notification

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, c *connection) Event {
	t.Helper()
	select {
	case data := <-c.send:
		var ev Event
		require.NoError(t, json.Unmarshal(data, &ev))
		return ev
	default:
		t.Fatal("expected a queued event")
		return Event{}
	}
}

func TestHub_PushReachesOnlyTheOwner(t *testing.T) {
	h := NewHub()
	owner := &connection{userID: 7, send: make(chan []byte, 8)}
	other := &connection{userID: 8, send: make(chan []byte, 8)}
	h.register(owner)
	h.register(other)

	h.NotifyServiceCreated(7, 42, "Discover Scuba Dive")

	ev := receive(t, owner)
	assert.Equal(t, EventServiceCreated, ev.Type)
	payload := ev.Payload.(map[string]interface{})
	assert.EqualValues(t, 42, payload["service_id"])
	assert.Equal(t, "Discover Scuba Dive", payload["name"])

	assert.Empty(t, other.send, "events must not leak to other vendors")
}

func TestHub_BookingEvent(t *testing.T) {
	h := NewHub()
	c := &connection{userID: 7, send: make(chan []byte, 8)}
	h.register(c)

	h.NotifyBookingCreated(7, 11, 42)

	ev := receive(t, c)
	assert.Equal(t, EventBookingCreated, ev.Type)
	payload := ev.Payload.(map[string]interface{})
	assert.EqualValues(t, 11, payload["booking_id"])
	assert.EqualValues(t, 42, payload["service_id"])
}

func TestHub_DisconnectedVendorIsSkipped(t *testing.T) {
	h := NewHub()
	c := &connection{userID: 7, send: make(chan []byte, 8)}
	h.register(c)
	h.unregister(c)

	// Must not panic or block with nobody listening.
	h.NotifyServiceCreated(7, 42, "Kayak Tour")

	_, open := <-c.send
	assert.False(t, open, "unregister closes the send channel")
}

func TestHub_SlowClientDoesNotBlockPush(t *testing.T) {
	h := NewHub()
	c := &connection{userID: 7, send: make(chan []byte, 1)}
	h.register(c)

	h.NotifyServiceCreated(7, 1, "a")
	h.NotifyServiceCreated(7, 2, "b") // buffer full, dropped

	ev := receive(t, c)
	payload := ev.Payload.(map[string]interface{})
	assert.EqualValues(t, 1, payload["service_id"])
	assert.Empty(t, c.send)
}
