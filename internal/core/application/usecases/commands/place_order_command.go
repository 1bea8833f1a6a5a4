package commands

import (
	"errors"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"
	"delify/internal/pkg/errs"
	"delify/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a customer's request to place an order against
// one restaurant. Carries the auth-provider identity of the customer, the
// validated order lines with price snapshots, the client-computed total, and
// the delivery address.
//
// Example:
//
//	item, _ := order.NewItem(menuItemID, 2, 100)
//	cmd, err := NewPlaceOrderCommand("firebase-uid-1", restaurantID,
//	    []order.Item{item}, 200, "Flat 1")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	externalUID     string
	restaurantID    kernel.UUID
	items           []order.Item
	totalAmount     float64
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the customer identity, restaurant reference, item list, and
// delivery address are all present. The total itself is checked against the
// line extensions by the Order aggregate during handling.
func NewPlaceOrderCommand(
	externalUID string,
	restaurantID kernel.UUID,
	items []order.Item,
	totalAmount float64,
	deliveryAddress string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		totalAmount: totalAmount,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setExternalUID(externalUID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// ExternalUID returns the customer's auth-provider identity.
func (c PlaceOrderCommand) ExternalUID() string {
	return c.externalUID
}

// RestaurantID returns the restaurant the order targets.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the ordered lines.
func (c PlaceOrderCommand) Items() []order.Item {
	return c.items
}

// TotalAmount returns the client-computed order total.
func (c PlaceOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// DeliveryAddress returns the free-text destination address.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *PlaceOrderCommand) setExternalUID(externalUID string) error {
	if externalUID == "" {
		return errs.NewValueIsRequiredError("user")
	}
	c.externalUID = externalUID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = deliveryAddress
	return nil
}
