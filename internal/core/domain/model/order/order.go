package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// totalAmountTolerance bounds the allowed float drift between the submitted
// total and the sum of line extensions.
const totalAmountTolerance = 1e-6

// Order is the aggregate root for a customer's placed purchase against one
// restaurant, tracked through the delivery-status lifecycle.
//
// Invariants:
//   - id, userID, and restaurantID are valid UUIDs
//   - items is non-empty and every line is a validated Item
//   - totalAmount equals the sum of line extensions and is immutable
//     after creation
//   - deliveryAddress is non-empty
//   - status is always one of the defined lifecycle values
//
// Orders are created in Placed status and mutated only through ChangeStatus
// and SetEstimatedDeliveryTime, both of which refresh the update timestamp.
type Order struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID

	items       []Item
	totalAmount float64

	status                Status
	estimatedDeliveryTime string
	deliveryAddress       string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Placed status with validation.
// totalAmount must match the sum of the line extensions; it is the caller's
// (client's) declared total and is never recomputed afterwards.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	totalAmount float64,
	deliveryAddress string,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Placed,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	if err := o.setTotalAmount(totalAmount); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation-time total check, since historical data is trusted as stored.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	totalAmount float64,
	status Status,
	estimatedDeliveryTime string,
	deliveryAddress string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		totalAmount:           totalAmount,
		estimatedDeliveryTime: estimatedDeliveryTime,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// RestaurantID returns the restaurant the order was placed against.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the ordered lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the total declared at creation time.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// EstimatedDeliveryTime returns the display estimate set by the restaurant,
// or the empty string when none was set.
func (o *Order) EstimatedDeliveryTime() string {
	return o.estimatedDeliveryTime
}

// DeliveryAddress returns the free-text destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus sets the order's status and refreshes the update timestamp.
//
// No transition graph is enforced here: operators are trusted to set any
// status from any prior state, including the terminal overrides, matching
// the permissive behavior of the upstream system. Setting the same status
// twice is a harmless no-op apart from the timestamp refresh. Automatic
// (scheduled) progression guards the forward chain at the caller instead.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.touch()
	return nil
}

// SetEstimatedDeliveryTime records the restaurant's display estimate
// (free text such as "30-40 min") and refreshes the update timestamp.
func (o *Order) SetEstimatedDeliveryTime(estimate string) {
	o.estimatedDeliveryTime = estimate
	o.touch()
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	o.userID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setTotalAmount(totalAmount float64) error {
	var sum float64
	for _, item := range o.items {
		sum += item.Extension()
	}

	if math.Abs(totalAmount-sum) > totalAmountTolerance {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%f does not equal the sum of line extensions %f", totalAmount, sum))
	}

	o.totalAmount = totalAmount
	return nil
}
