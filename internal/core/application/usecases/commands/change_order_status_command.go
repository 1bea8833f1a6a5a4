package commands

import (
	"errors"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"
	"delify/internal/pkg/errs"
	"delify/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a transition request against one order:
// a new status, a new estimated-delivery-time display string, or both.
// It is issued by the status scheduler for automatic forward progress and by
// operators for manual changes, terminal overrides included.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.UUID
	status                *order.Status
	estimatedDeliveryTime *string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a transition command.
// At least one of status and estimatedDeliveryTime must be supplied; a given
// status must be a valid lifecycle value.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	status *order.Status,
	estimatedDeliveryTime *string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	if status == nil && estimatedDeliveryTime == nil {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredError("status or estimatedDeliveryTime")
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ChangeOrderStatusCommand{}, err
		}
		s := *status
		cmd.status = &s
	}

	if estimatedDeliveryTime != nil {
		e := *estimatedDeliveryTime
		cmd.estimatedDeliveryTime = &e
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order the transition targets.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status, or nil when only the estimate changes.
func (c ChangeOrderStatusCommand) Status() *order.Status {
	return c.status
}

// EstimatedDeliveryTime returns the requested display estimate, or nil.
func (c ChangeOrderStatusCommand) EstimatedDeliveryTime() *string {
	return c.estimatedDeliveryTime
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}
