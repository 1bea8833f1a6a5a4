// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order row and its line items live in separate tables;
// the repository keeps them consistent within the ambient transaction.
package orderrepo

import (
	"time"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored under its wire name so rows stay readable and queries can
// filter without knowing the enum encoding.
type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID          uuid.UUID `gorm:"type:uuid;index"`
	TotalAmount           float64
	Status                string `gorm:"index"`
	EstimatedDeliveryTime string
	DeliveryAddress       string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Lines are immutable after placement:
// they are inserted with the order and only ever deleted with it.
type ItemDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	UnitPrice  float64
}

// TableName overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		UserID:                aggregate.UserID().Bytes(),
		RestaurantID:          aggregate.RestaurantID().Bytes(),
		TotalAmount:           aggregate.TotalAmount(),
		Status:                aggregate.Status().String(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		DeliveryAddress:       aggregate.DeliveryAddress(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

func itemsFromDomain(aggregate *order.Order) []ItemDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
		})
	}
	return items
}

// toDomain reconstructs the order aggregate from its row and line items
// using RestoreOrder.
func toDomain(dto OrderDTO, itemDTOs []ItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(menuItemID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		userID,
		restaurantID,
		items,
		dto.TotalAmount,
		status,
		dto.EstimatedDeliveryTime,
		dto.DeliveryAddress,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
