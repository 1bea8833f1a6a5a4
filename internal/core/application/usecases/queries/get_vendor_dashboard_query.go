package queries

import (
	"errors"

	"delify/internal/pkg/errs"
	"delify/internal/pkg/guard"
)

var (
	ErrGetVendorDashboardQueryIsNotConstructed = errors.New(
		"GetVendorDashboardQuery must be created via NewGetVendorDashboardQuery constructor",
	)
)

// GetVendorDashboardQuery retrieves a restaurant owner's dashboard by the
// owner's auth-provider uid: their restaurant, its incoming orders, and
// aggregate stats.
type GetVendorDashboardQuery struct {
	externalUID string

	guard guard.ConstructorGuard
}

// NewGetVendorDashboardQuery creates a query for the vendor dashboard.
func NewGetVendorDashboardQuery(externalUID string) (GetVendorDashboardQuery, error) {
	if externalUID == "" {
		return GetVendorDashboardQuery{}, errs.NewValueIsRequiredError("externalUID")
	}

	return GetVendorDashboardQuery{
		externalUID: externalUID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorDashboardQueryIsNotConstructed)
}

// ExternalUID returns the auth-provider uid of the owner.
func (q GetVendorDashboardQuery) ExternalUID() string {
	return q.externalUID
}

// DashboardStats summarizes a restaurant's order book. Active counts every
// order still in flight; revenue sums the totals of all non-cancelled orders.
type DashboardStats struct {
	TotalOrders     int     `json:"totalOrders"`
	ActiveOrders    int     `json:"activeOrders"`
	CompletedOrders int     `json:"completedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

// RestaurantDetailView is the full restaurant card shown on the dashboard.
type RestaurantDetailView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Cuisine      []string `json:"cuisine"`
	Address      string   `json:"address"`
	Rating       float64  `json:"rating"`
	DeliveryTime string   `json:"deliveryTime"`
	PriceForTwo  float64  `json:"priceForTwo"`
}

// GetVendorDashboardQueryResponse bundles the dashboard payload.
type GetVendorDashboardQueryResponse struct {
	Restaurant RestaurantDetailView `json:"restaurant"`
	Orders     []OrderView          `json:"orders"`
	Stats      DashboardStats       `json:"stats"`
}
