package queries

import (
	"context"
	"database/sql"
	"errors"

	"delify/internal/core/domain/model/order"
	"delify/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetVendorDashboardQueryHandler assembles the restaurant owner's dashboard.
//
// Owner resolution runs in two steps: the restaurant explicitly linked to the
// owner's account wins; otherwise the restaurant whose stored owner email
// matches the account email is used. The email fallback covers restaurants
// registered before their owner's account existed.
type GetVendorDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorDashboardQueryHandler creates a handler for vendor dashboards.
func NewGetVendorDashboardQueryHandler(db *gorm.DB) GetVendorDashboardQueryHandler {
	return GetVendorDashboardQueryHandler{db: db}
}

// Handle returns the owner's restaurant, its orders newest first, and the
// aggregate stats. Fails with errs.ObjectNotFoundError when the uid matches
// no user or the user owns no restaurant.
func (h GetVendorDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetVendorDashboardQuery,
) (GetVendorDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVendorDashboardQueryResponse{}, err
	}

	ownerID, ownerEmail, err := h.resolveOwner(ctx, query.ExternalUID())
	if err != nil {
		return GetVendorDashboardQueryResponse{}, err
	}

	restaurant, err := h.resolveRestaurant(ctx, ownerID, ownerEmail)
	if err != nil {
		return GetVendorDashboardQueryResponse{}, err
	}

	orders, err := queryOrderViews(ctx, h.db, `
		WHERE o.restaurant_id = ?
		ORDER BY o.created_at DESC
	`, restaurant.ID)
	if err != nil {
		return GetVendorDashboardQueryResponse{}, err
	}

	return GetVendorDashboardQueryResponse{
		Restaurant: restaurant,
		Orders:     orders,
		Stats:      computeStats(orders),
	}, nil
}

func (h *GetVendorDashboardQueryHandler) resolveOwner(
	ctx context.Context,
	externalUID string,
) (uuid.UUID, string, error) {
	var (
		id    uuid.UUID
		email string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, email FROM users WHERE external_uid = ?
	`, externalUID).Row()

	if err := row.Scan(&id, &email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.UUID{}, "", errs.NewObjectNotFoundError("user", externalUID)
		}
		return uuid.UUID{}, "", err
	}

	return id, email, nil
}

func (h *GetVendorDashboardQueryHandler) resolveRestaurant(
	ctx context.Context,
	ownerID uuid.UUID,
	ownerEmail string,
) (RestaurantDetailView, error) {
	var (
		view    RestaurantDetailView
		id      uuid.UUID
		cuisine pq.StringArray
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, name, description, image, cuisine,
			address, rating, delivery_time, price_for_two
		FROM restaurants
		WHERE owner_id = ? OR (owner_id IS NULL AND owner_email = ?)
		ORDER BY owner_id NULLS LAST
		LIMIT 1
	`, ownerID, ownerEmail).Row()

	err := row.Scan(
		&id,
		&view.Name,
		&view.Description,
		&view.Image,
		&cuisine,
		&view.Address,
		&view.Rating,
		&view.DeliveryTime,
		&view.PriceForTwo,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RestaurantDetailView{}, errs.NewObjectNotFoundError("restaurant", ownerEmail)
		}
		return RestaurantDetailView{}, err
	}

	view.ID = id.String()
	view.Cuisine = cuisine
	return view, nil
}

// computeStats derives the dashboard counters from the already-loaded order
// views. Active means still in flight; cancelled orders never count toward
// revenue.
func computeStats(orders []OrderView) DashboardStats {
	stats := DashboardStats{TotalOrders: len(orders)}

	for _, o := range orders {
		switch o.Status {
		case order.Delivered.String():
			stats.CompletedOrders++
		case order.Cancelled.String():
		default:
			stats.ActiveOrders++
		}

		if o.Status != order.Cancelled.String() {
			stats.TotalRevenue += o.TotalAmount
		}
	}

	return stats
}
