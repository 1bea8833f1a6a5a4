package notifications

import (
	"context"
	"log/slog"
)

// Recipient-key prefixes. A key addresses the set of currently connected
// channels subscribed to it; membership lives only for the process lifetime.
const (
	userKeyPrefix       = "user:"
	restaurantKeyPrefix = "restaurant:"
)

// UserKey returns the recipient key for one user's channels.
func UserKey(externalUID string) string {
	return userKeyPrefix + externalUID
}

// RestaurantKey returns the recipient key for one restaurant's channels.
func RestaurantKey(restaurantID string) string {
	return restaurantKeyPrefix + restaurantID
}

// Router is the channel-membership registry the fan-out publishes through.
// The websocket hub implements it; tests substitute an in-memory fake.
type Router interface {
	// Publish delivers the event to every channel in key's member set.
	Publish(key string, event string, payload any)

	// PublishAll delivers the event to every connected channel.
	PublishAll(event string, payload any)
}

// Fanout delivers order events to their recipient sets through the Router.
// It implements ports.Notifier. Delivery is fire-and-forget: the Router
// swallows per-channel errors, so fan-out can never fail a command.
type Fanout struct {
	router Router
	logger *slog.Logger
}

// NewFanout creates the fan-out component over a channel router.
func NewFanout(router Router, logger *slog.Logger) *Fanout {
	return &Fanout{
		router: router,
		logger: logger.With("component", "notification_fanout"),
	}
}

// Broadcast delivers the event to every connected channel.
func (f *Fanout) Broadcast(ctx context.Context, event string, payload any) {
	f.router.PublishAll(event, payload)
	f.logger.DebugContext(ctx, "event broadcast", "event", event)
}

// NotifyUser delivers the event to the user's subscribed channels.
func (f *Fanout) NotifyUser(ctx context.Context, externalUID string, event string, payload any) {
	f.router.Publish(UserKey(externalUID), event, payload)
	f.logger.DebugContext(ctx, "event sent to user", "event", event, "user", externalUID)
}

// NotifyRestaurant delivers the event to the restaurant's subscribed channels.
func (f *Fanout) NotifyRestaurant(ctx context.Context, restaurantID string, event string, payload any) {
	f.router.Publish(RestaurantKey(restaurantID), event, payload)
	f.logger.DebugContext(ctx, "event sent to restaurant", "event", event, "restaurant", restaurantID)
}
