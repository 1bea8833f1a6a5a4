package ports

import "context"

// Push-channel event names emitted by the lifecycle engine.
const (
	// EventNewOrderAdmin is broadcast to every connected channel when an
	// order is placed.
	EventNewOrderAdmin = "new_order_admin"

	// EventNewVendorOrder is sent to the restaurant's subscribers when an
	// order is placed against it.
	EventNewVendorOrder = "new_vendor_order"

	// EventOrderUpdated is sent to the owning user's subscribers on every
	// status or estimate change.
	EventOrderUpdated = "order_updated"
)

// Notifier is the outbound fan-out port the lifecycle engine pushes order
// events through. Delivery is fire-and-forget: implementations swallow
// per-channel failures and never fail the triggering operation, so none of
// the methods return an error.
type Notifier interface {
	// Broadcast delivers the event to every connected channel.
	Broadcast(ctx context.Context, event string, payload any)

	// NotifyUser delivers the event to every channel subscribed to the
	// user's recipient key.
	NotifyUser(ctx context.Context, externalUID string, event string, payload any)

	// NotifyRestaurant delivers the event to every channel subscribed to the
	// restaurant's recipient key.
	NotifyRestaurant(ctx context.Context, restaurantID string, event string, payload any)
}
