// Package schedule models the persisted, time-delayed status transitions that
// simulate kitchen and courier progress. Rows survive process restarts so a
// recovery sweep can fire transitions whose in-memory timers were lost.
package schedule

import (
	"time"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"
	"delify/internal/pkg/errs"
)

// Transition is one pending automatic status advance for an order: apply
// TargetStatus once FireAt has passed. A fired transition is marked rather
// than deleted so reruns of the sweep stay idempotent.
type Transition struct {
	id           kernel.UUID
	orderID      kernel.UUID
	targetStatus order.Status
	fireAt       time.Time
	firedAt      *time.Time
}

// NewTransition creates a pending transition for an order.
func NewTransition(orderID kernel.UUID, targetStatus order.Status, fireAt time.Time) (*Transition, error) {
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := targetStatus.Validate(); err != nil {
		return nil, err
	}
	if fireAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("fireAt")
	}

	return &Transition{
		id:           kernel.NewUUID(),
		orderID:      orderID,
		targetStatus: targetStatus,
		fireAt:       fireAt.UTC(),
	}, nil
}

// RestoreTransition reconstructs a transition from persistence.
func RestoreTransition(
	id, orderID kernel.UUID,
	targetStatus order.Status,
	fireAt time.Time,
	firedAt *time.Time,
) (*Transition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	t, err := NewTransition(orderID, targetStatus, fireAt)
	if err != nil {
		return nil, err
	}
	t.id = id
	t.firedAt = firedAt
	return t, nil
}

func (t *Transition) ID() kernel.UUID            { return t.id }
func (t *Transition) OrderID() kernel.UUID       { return t.orderID }
func (t *Transition) TargetStatus() order.Status { return t.targetStatus }
func (t *Transition) FireAt() time.Time          { return t.fireAt }
func (t *Transition) FiredAt() *time.Time        { return t.firedAt }

// IsDue reports whether the transition should fire at the given time.
func (t *Transition) IsDue(now time.Time) bool {
	return t.firedAt == nil && !t.fireAt.After(now)
}

// MarkFired records that the transition has been applied.
func (t *Transition) MarkFired(now time.Time) {
	firedAt := now.UTC()
	t.firedAt = &firedAt
}
