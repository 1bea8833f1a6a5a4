package ports

import (
	"context"

	"delify/internal/core/domain/model/kernel"
)

// TransitionScheduler registers delayed, order-scoped status advances.
// Implementations chain the transitions: each fired advance schedules the
// next one, so progression stays monotonic and a terminal override stops
// the rest of the chain.
type TransitionScheduler interface {
	// ScheduleLifecycle registers the first automatic advance for a freshly
	// placed order. Subsequent advances are scheduled by the implementation
	// as each one fires.
	ScheduleLifecycle(ctx context.Context, orderID kernel.UUID) error

	// CancelFor drops every pending scheduled advance of one order.
	CancelFor(ctx context.Context, orderID kernel.UUID) error
}
