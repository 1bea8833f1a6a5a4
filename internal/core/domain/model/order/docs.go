// Package order provides the domain model for customer orders and their
// delivery lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the ordered lines, totals, and
//     lifecycle state
//   - Item: a value object for one ordered line with a price snapshot
//   - Status: the delivery-lifecycle enumeration with the forward chain
//     Placed -> Preparing -> OutForDelivery -> Delivered plus the
//     operator-only terminal overrides Cancelled and OutOfStock
//
// Key business rules:
//   - An order always references an existing user and restaurant and carries
//     at least one line
//   - The total amount is fixed at creation and must equal the sum of line
//     extensions
//   - Automatic progression only moves forward along the chain; operators may
//     override to any status, which the aggregate deliberately does not block
package order
