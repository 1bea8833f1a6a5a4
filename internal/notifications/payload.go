// Package notifications implements the order-event fan-out: it shapes order
// payloads for the push channel and delivers them to every channel subscribed
// to a recipient key. Transport is behind the Router interface, keeping the
// lifecycle engine decoupled from the websocket layer.
package notifications

import (
	"time"

	"delify/internal/core/domain/model/account"
	"delify/internal/core/domain/model/catalog"
	"delify/internal/core/domain/model/order"
)

// OrderPayload is the JSON body carried by every push-channel order event.
// User, Restaurant, and per-item names are resolved for display when the
// collaborator stores can supply them and omitted otherwise.
type OrderPayload struct {
	ID                    string             `json:"id"`
	User                  *UserInfo          `json:"user,omitempty"`
	Restaurant            *RestaurantInfo    `json:"restaurant,omitempty"`
	Items                 []ItemInfo         `json:"items"`
	TotalAmount           float64            `json:"totalAmount"`
	Status                string             `json:"status"`
	EstimatedDeliveryTime string             `json:"estimatedDeliveryTime,omitempty"`
	DeliveryAddress       string             `json:"deliveryAddress"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
}

// UserInfo is the resolved display subset of the owning user.
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RestaurantInfo is the resolved display subset of the restaurant.
type RestaurantInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// ItemInfo is one ordered line with its display name resolved when known.
type ItemInfo struct {
	MenuItemID string  `json:"menuItem"`
	Name       string  `json:"name,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// NewOrderPayload shapes an order for the push channel. user, restaurant, and
// menu may each be nil/empty; the payload then simply carries the raw ids,
// matching the unresolved form admin broadcasts use.
func NewOrderPayload(
	o *order.Order,
	user *account.User,
	restaurant *catalog.Restaurant,
	menu []*catalog.MenuItem,
) OrderPayload {
	names := make(map[string]string, len(menu))
	for _, m := range menu {
		names[m.ID().String()] = m.Name()
	}

	items := make([]ItemInfo, 0, len(o.Items()))
	for _, item := range o.Items() {
		id := item.MenuItemID().String()
		items = append(items, ItemInfo{
			MenuItemID: id,
			Name:       names[id],
			Quantity:   item.Quantity(),
			Price:      item.UnitPrice(),
		})
	}

	payload := OrderPayload{
		ID:                    o.ID().String(),
		Items:                 items,
		TotalAmount:           o.TotalAmount(),
		Status:                o.Status().String(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		DeliveryAddress:       o.DeliveryAddress(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}

	if user != nil {
		payload.User = &UserInfo{
			ID:    user.ID().String(),
			Name:  user.Name(),
			Email: user.Email(),
		}
	}
	if restaurant != nil {
		payload.Restaurant = &RestaurantInfo{
			ID:    restaurant.ID().String(),
			Name:  restaurant.Name(),
			Image: restaurant.Image(),
		}
	}

	return payload
}
