// Package catalog holds the restaurant and menu models of the catalog
// collaborator store. Full catalog management is external; the core reads
// restaurants for vendor-dashboard owner resolution and menu items to
// resolve display fields on notification payloads.
package catalog

import (
	"delify/internal/core/domain/model/kernel"
	"delify/internal/pkg/errs"
)

// Restaurant is a vendor a customer can order from. OwnerID links the
// restaurant to its owner's account when known; OwnerEmail is kept alongside
// so an owner registered after the restaurant can still be matched.
type Restaurant struct {
	id           kernel.UUID
	ownerID      *kernel.UUID
	ownerEmail   string
	name         string
	description  string
	image        string
	cuisine      []string
	address      string
	rating       float64
	deliveryTime string
	priceForTwo  float64
}

// NewRestaurant creates a validated restaurant record.
func NewRestaurant(id kernel.UUID, name, address string) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}

	return &Restaurant{
		id:      id,
		name:    name,
		address: address,
	}, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(
	id kernel.UUID,
	ownerID *kernel.UUID,
	ownerEmail string,
	name string,
	description string,
	image string,
	cuisine []string,
	address string,
	rating float64,
	deliveryTime string,
	priceForTwo float64,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, name, address)
	if err != nil {
		return nil, err
	}

	r.ownerID = ownerID
	r.ownerEmail = ownerEmail
	r.description = description
	r.image = image
	r.cuisine = cuisine
	r.rating = rating
	r.deliveryTime = deliveryTime
	r.priceForTwo = priceForTwo
	return r, nil
}

func (r *Restaurant) ID() kernel.UUID       { return r.id }
func (r *Restaurant) OwnerID() *kernel.UUID { return r.ownerID }
func (r *Restaurant) OwnerEmail() string    { return r.ownerEmail }
func (r *Restaurant) Name() string          { return r.name }
func (r *Restaurant) Description() string   { return r.description }
func (r *Restaurant) Image() string         { return r.image }
func (r *Restaurant) Cuisine() []string     { return r.cuisine }
func (r *Restaurant) Address() string       { return r.address }
func (r *Restaurant) Rating() float64       { return r.rating }
func (r *Restaurant) DeliveryTime() string  { return r.deliveryTime }
func (r *Restaurant) PriceForTwo() float64  { return r.priceForTwo }

