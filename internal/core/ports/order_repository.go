package ports

import (
	"context"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns an errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete hard-deletes an order, bypassing the lifecycle. Administrative
	// escape hatch only; the core never deletes orders on its own.
	Delete(ctx context.Context, id kernel.UUID) error
}
