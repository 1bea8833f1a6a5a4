package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderView is the read-model shape shared by the order queries: one order
// with its user, restaurant, and line display fields already resolved, ready
// for serialization.
type OrderView struct {
	ID                    string          `json:"id"`
	Status                string          `json:"status"`
	TotalAmount           float64         `json:"totalAmount"`
	EstimatedDeliveryTime string          `json:"estimatedDeliveryTime"`
	DeliveryAddress       string          `json:"deliveryAddress"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
	User                  UserView        `json:"user"`
	Restaurant            RestaurantView  `json:"restaurant"`
	Items                 []OrderItemView `json:"items"`
}

// UserView carries the customer display fields resolved onto an order.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RestaurantView carries the vendor display fields resolved onto an order.
type RestaurantView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// OrderItemView is one order line with the menu-item name resolved. Name is
// empty when the menu item has since been removed from the catalog.
type OrderItemView struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// orderViewSelect is the join all order queries share. Callers append their
// own WHERE clause; ordering is always newest first.
const orderViewSelect = `
	SELECT
		o.id,
		o.status,
		o.total_amount,
		o.estimated_delivery_time,
		o.delivery_address,
		o.created_at,
		o.updated_at,
		u.id,
		u.name,
		u.email,
		r.id,
		r.name,
		r.image
	FROM orders o
	JOIN users u ON u.id = o.user_id
	JOIN restaurants r ON r.id = o.restaurant_id
`

// queryOrderViews runs the shared order join with the given suffix and args
// and loads the line items for every returned order in one extra query.
func queryOrderViews(
	ctx context.Context,
	db *gorm.DB,
	suffix string,
	args ...any,
) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(orderViewSelect+suffix, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var (
			view                          OrderView
			orderID, userID, restaurantID uuid.UUID
		)

		err = rows.Scan(
			&orderID,
			&view.Status,
			&view.TotalAmount,
			&view.EstimatedDeliveryTime,
			&view.DeliveryAddress,
			&view.CreatedAt,
			&view.UpdatedAt,
			&userID,
			&view.User.Name,
			&view.User.Email,
			&restaurantID,
			&view.Restaurant.Name,
			&view.Restaurant.Image,
		)
		if err != nil {
			return nil, err
		}

		view.ID = orderID.String()
		view.User.ID = userID.String()
		view.Restaurant.ID = restaurantID.String()
		view.Items = make([]OrderItemView, 0)
		orders = append(orders, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems resolves the order lines for every view in place. Menu items
// deleted from the catalog leave the line's name empty rather than dropping
// the line.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderView) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[string]*OrderView, len(orders))
	ids := make([]string, 0, len(orders))
	for i := range orders {
		index[orders[i].ID] = &orders[i]
		ids = append(ids, orders[i].ID)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.menu_item_id,
			COALESCE(mi.name, ''),
			oi.quantity,
			oi.unit_price
		FROM order_items oi
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id IN ?
		ORDER BY oi.id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, menuItemID uuid.UUID
			item                OrderItemView
		)

		err = rows.Scan(&orderID, &menuItemID, &item.Name, &item.Quantity, &item.Price)
		if err != nil {
			return err
		}

		item.MenuItemID = menuItemID.String()
		if view, ok := index[orderID.String()]; ok {
			view.Items = append(view.Items, item)
		}
	}

	return rows.Err()
}
