package order

import (
	"fmt"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/pkg/errs"
)

// Item is a value object describing one ordered line: a catalog menu item,
// the quantity ordered, and the unit price snapshot taken at order time.
// The snapshot keeps historical orders stable when the catalog price changes.
type Item struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  float64
}

// NewItem creates a validated order line.
// Quantity must be at least 1 and the unit price must not be negative.
func NewItem(menuItemID kernel.UUID, quantity int, unitPrice float64) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}

	return Item{
		menuItemID: menuItemID,
		quantity:   quantity,
		unitPrice:  unitPrice,
	}, nil
}

// MenuItemID returns the referenced catalog item.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken at order time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Extension returns quantity times unit price for this line.
func (i Item) Extension() float64 {
	return float64(i.quantity) * i.unitPrice
}
