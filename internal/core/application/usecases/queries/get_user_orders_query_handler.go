package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads one customer's order history straight from
// the database. An unknown uid yields an empty history, not an error: the
// customer may simply never have ordered.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for customer order history.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders, newest first, with user, restaurant,
// and menu-item display fields resolved.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryOrderViews(ctx, h.db, `
		WHERE u.external_uid = ?
		ORDER BY o.created_at DESC
	`, query.ExternalUID())
}
