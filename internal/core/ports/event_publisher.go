package ports

import "context"

// OrderEventPublisher streams order lifecycle events to the message broker
// for downstream consumers (analytics, audit). Publishing is best-effort:
// callers log failures and carry on.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event string, payload any) error
}
