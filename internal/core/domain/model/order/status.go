package order

import (
	"fmt"

	"delify/internal/pkg/errs"
)

// Status represents the delivery-lifecycle state of an order.
//
// Normal progression:
//
//	Placed ──> Preparing ──> OutForDelivery ──> Delivered
//
// Any non-terminal state can additionally be overridden to Cancelled or
// OutOfStock by an operator. Scheduled (automatic) progression only ever
// moves forward along the normal chain; the overrides are operator-only.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned when an order is created.
	Placed

	// Preparing indicates the restaurant has started preparing the order.
	Preparing

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery

	// Delivered is the terminal status of a successful delivery.
	Delivered

	// Cancelled is a terminal override set by an operator.
	Cancelled

	// OutOfStock is a terminal override set by an operator when the
	// restaurant cannot fulfil the order.
	OutOfStock
)

// getStatusStrings returns the wire/storage names for every Status value.
// The names match the public API representation ("out_for_delivery" etc.).
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Placed:         "placed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		OutOfStock:     "out_of_stock",
	}
}

// getValidStatusStrings returns only the statuses accepted from external input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "placed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		OutOfStock:     "out_of_stock",
	}
}

// ParseStatus converts a wire name ("preparing", "out_for_delivery", ...)
// into a Status. Returns an error for unrecognized names.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and is
// safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the lifecycle. Terminal orders
// receive no further scheduled transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == OutOfStock
}

// Next returns the following status on the normal forward chain and true,
// or (Unknown, false) when the status is terminal or off the chain.
//
// Example:
//
//	next, ok := order.Placed.Next() // Preparing, true
func (s Status) Next() (Status, bool) {
	switch s {
	case Placed:
		return Preparing, true
	case Preparing:
		return OutForDelivery, true
	case OutForDelivery:
		return Delivered, true
	default:
		return Unknown, false
	}
}
