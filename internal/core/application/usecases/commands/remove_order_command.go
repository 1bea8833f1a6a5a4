package commands

import (
	"errors"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/pkg/errs"
	"delify/internal/pkg/guard"
)

var (
	ErrRemoveOrderCommandIsNotConstructed = errors.New(
		"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
	)
)

// RemoveOrderCommand represents the administrative hard delete of an order.
// It bypasses the lifecycle entirely; regular flows never delete orders.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to hard-delete an order.
func NewRemoveOrderCommand(orderID kernel.UUID) (RemoveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RemoveOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return RemoveOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the order to delete.
func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
