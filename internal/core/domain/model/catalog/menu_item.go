package catalog

import (
	"fmt"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/pkg/errs"
)

// MenuItem is a dish offered by one restaurant. Orders snapshot its price at
// placement time, so later catalog edits never change historical totals.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        float64
	image        string
	category     string
	isAvailable  bool
}

// NewMenuItem creates a validated menu item.
func NewMenuItem(id, restaurantID kernel.UUID, name string, price float64) (*MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := restaurantID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}

	return &MenuItem{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		isAvailable:  true,
	}, nil
}

// RestoreMenuItem reconstructs a menu item from persistence.
func RestoreMenuItem(
	id, restaurantID kernel.UUID,
	name, description string,
	price float64,
	image, category string,
	isAvailable bool,
) (*MenuItem, error) {
	m, err := NewMenuItem(id, restaurantID, name, price)
	if err != nil {
		return nil, err
	}
	m.description = description
	m.image = image
	m.category = category
	m.isAvailable = isAvailable
	return m, nil
}

func (m *MenuItem) ID() kernel.UUID           { return m.id }
func (m *MenuItem) RestaurantID() kernel.UUID { return m.restaurantID }
func (m *MenuItem) Name() string              { return m.name }
func (m *MenuItem) Description() string       { return m.description }
func (m *MenuItem) Price() float64            { return m.price }
func (m *MenuItem) Image() string             { return m.image }
func (m *MenuItem) Category() string          { return m.category }
func (m *MenuItem) IsAvailable() bool         { return m.isAvailable }
