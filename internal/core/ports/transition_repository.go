package ports

import (
	"context"
	"time"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/schedule"
)

// TransitionRepository defines the persistence contract for scheduled status
// transitions. Persisting the schedule lets a recovery sweep re-fire
// transitions whose in-memory timers died with the process.
type TransitionRepository interface {
	// Add persists a new pending transition.
	Add(ctx context.Context, transition *schedule.Transition) error

	// Update persists changes (normally the fired marker) to a transition.
	Update(ctx context.Context, transition *schedule.Transition) error

	// ClaimFired atomically marks an unfired transition as fired and
	// reports whether this caller won the claim. A lost claim means
	// another goroutine (timer or sweep) is already applying the row.
	ClaimFired(ctx context.Context, id kernel.UUID, firedAt time.Time) (bool, error)

	// GetDue retrieves every unfired transition with fireAt <= now,
	// ordered by fireAt ascending.
	GetDue(ctx context.Context, now time.Time) ([]*schedule.Transition, error)

	// DeleteForOrder removes all pending transitions of one order.
	// Used when an order is hard-deleted or its chain is cancelled.
	DeleteForOrder(ctx context.Context, orderID kernel.UUID) error
}
