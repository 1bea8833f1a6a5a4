package ws

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"delify/internal/notifications"

	"github.com/stretchr/testify/assert"
)

func newDetachedClient(hub *Hub, buffer int) *Client {
	return &Client{
		hub:    hub,
		send:   make(chan outboundMessage, buffer),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_DeliverAfterDisconnectIsDropped(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	client := newDetachedClient(hub, sendBuffer)
	hub.Join(client, notifications.UserKey("uid-1"))

	hub.Unregister(client)
	client.closeSend()

	assert.NotPanics(t, func() {
		client.Deliver("order_updated", nil)
	})
	assert.Empty(t, client.send)
}

func TestClient_CloseSendIsIdempotent(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	client := newDetachedClient(hub, sendBuffer)

	assert.NotPanics(t, func() {
		client.closeSend()
		client.closeSend()
	})
}

func TestClient_ConcurrentPublishAndDisconnect(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Races a publisher holding a pre-disconnect membership snapshot
	// against the read pump's cleanup. Delivery to a closed client must
	// drop the event, never panic.
	for range 200 {
		hub := NewHub(logger)
		client := newDetachedClient(hub, 1)
		hub.Join(client, notifications.UserKey("uid-1"))

		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			for range 10 {
				hub.Publish(notifications.UserKey("uid-1"), "order_updated", nil)
			}
		}()
		go func() {
			defer wg.Done()
			hub.Unregister(client)
			client.closeSend()
		}()

		wg.Wait()
	}
}
