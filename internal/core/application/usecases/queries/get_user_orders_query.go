package queries

import (
	"errors"

	"delify/internal/pkg/errs"
	"delify/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
)

// GetUserOrdersQuery retrieves a customer's order history by their
// auth-provider uid, newest order first.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery("firebase-uid-1")
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetUserOrdersQuery struct {
	externalUID string

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for one customer's order history.
func NewGetUserOrdersQuery(externalUID string) (GetUserOrdersQuery, error) {
	if externalUID == "" {
		return GetUserOrdersQuery{}, errs.NewValueIsRequiredError("externalUID")
	}

	return GetUserOrdersQuery{
		externalUID: externalUID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// ExternalUID returns the auth-provider uid of the customer.
func (q GetUserOrdersQuery) ExternalUID() string {
	return q.externalUID
}
