package notifications_test

import (
	"io"
	"log/slog"
	"testing"

	"delify/internal/notifications"

	"github.com/stretchr/testify/assert"
)

type published struct {
	Key   string
	Event string
}

type fakeRouter struct {
	events []published
}

func (r *fakeRouter) Publish(key string, event string, _ any) {
	r.events = append(r.events, published{Key: key, Event: event})
}

func (r *fakeRouter) PublishAll(event string, _ any) {
	r.events = append(r.events, published{Event: event})
}

func TestFanout_Routing(t *testing.T) {
	router := &fakeRouter{}
	fanout := notifications.NewFanout(router, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := t.Context()

	fanout.Broadcast(ctx, "new_order_admin", nil)
	fanout.NotifyUser(ctx, "uid-1", "order_updated", nil)
	fanout.NotifyRestaurant(ctx, "r-1", "new_vendor_order", nil)

	assert.Equal(t, []published{
		{Event: "new_order_admin"},
		{Key: "user:uid-1", Event: "order_updated"},
		{Key: "restaurant:r-1", Event: "new_vendor_order"},
	}, router.events)
}
