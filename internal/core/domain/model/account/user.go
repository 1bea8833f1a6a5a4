// Package account holds the user model of the identity collaborator store.
// Authentication and provider sync live outside this service; the core only
// resolves users by their external auth id and keeps the denormalized default
// delivery address up to date.
package account

import (
	"errors"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/pkg/errs"
)

// Role classifies what a user may do in the system.
type Role string

const (
	RoleCustomer        Role = "customer"
	RoleRestaurantOwner Role = "restaurant_owner"
	RoleAdmin           Role = "admin"
)

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleRestaurantOwner, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// User is a registered account synced from the external auth provider.
// ExternalUID is the provider-issued identity clients authenticate with and
// the key order placement resolves users by.
type User struct {
	id          kernel.UUID
	externalUID string
	email       string
	name        string
	role        Role
	address     string
}

// NewUser creates a validated user record.
func NewUser(id kernel.UUID, externalUID, email, name string, role Role) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	if externalUID == "" {
		return nil, errs.NewValueIsRequiredError("externalUID")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &User{
		id:          id,
		externalUID: externalUID,
		email:       email,
		name:        name,
		role:        role,
	}, nil
}

// RestoreUser reconstructs a user from persistence, address included.
func RestoreUser(id kernel.UUID, externalUID, email, name string, role Role, address string) (*User, error) {
	u, err := NewUser(id, externalUID, email, name, role)
	if err != nil {
		return nil, err
	}
	u.address = address
	return u, nil
}

func (u *User) ID() kernel.UUID     { return u.id }
func (u *User) ExternalUID() string { return u.externalUID }
func (u *User) Email() string       { return u.email }
func (u *User) Name() string        { return u.name }
func (u *User) Role() Role          { return u.role }
func (u *User) Address() string     { return u.address }

// SetAddress stores the user's default delivery address. Order placement
// copies the submitted delivery address here as a convenience default.
func (u *User) SetAddress(address string) {
	u.address = address
}
