// Package restaurantrepo persists the catalog read models: restaurants and
// their menu items. Catalog management is external; this adapter serves the
// lookups the core needs for owner resolution and display fields.
package restaurantrepo

import (
	"context"
	"errors"

	"delify/internal/core/domain/model/catalog"
	"delify/internal/core/domain/model/kernel"
	"delify/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// RestaurantDTO represents the database structure for persisting restaurants.
// OwnerID stays NULL until the owner's account is linked; OwnerEmail carries
// the fallback match key.
type RestaurantDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID      *uuid.UUID `gorm:"type:uuid;index"`
	OwnerEmail   string     `gorm:"index"`
	Name         string
	Description  string
	Image        string
	Cuisine      pq.StringArray `gorm:"type:text[]"`
	Address      string
	Rating       float64
	DeliveryTime string
	PriceForTwo  float64
}

// TableName overrides GORM's default naming convention to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Description  string
	Price        float64
	Image        string
	Category     string
	IsAvailable  bool
}

// TableName overrides GORM's default naming convention to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(restaurant *catalog.Restaurant) RestaurantDTO {
	var ownerID *uuid.UUID
	if id := restaurant.OwnerID(); id != nil {
		raw := id.Bytes()
		ownerID = &raw
	}

	return RestaurantDTO{
		ID:           restaurant.ID().Bytes(),
		OwnerID:      ownerID,
		OwnerEmail:   restaurant.OwnerEmail(),
		Name:         restaurant.Name(),
		Description:  restaurant.Description(),
		Image:        restaurant.Image(),
		Cuisine:      restaurant.Cuisine(),
		Address:      restaurant.Address(),
		Rating:       restaurant.Rating(),
		DeliveryTime: restaurant.DeliveryTime(),
		PriceForTwo:  restaurant.PriceForTwo(),
	}
}

func toDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var ownerID *kernel.UUID
	if dto.OwnerID != nil {
		oID, ownerErr := kernel.UUIDFromBytes((*dto.OwnerID)[:])
		if ownerErr != nil {
			return nil, ownerErr
		}
		ownerID = &oID
	}

	return catalog.RestoreRestaurant(
		id,
		ownerID,
		dto.OwnerEmail,
		dto.Name,
		dto.Description,
		dto.Image,
		dto.Cuisine,
		dto.Address,
		dto.Rating,
		dto.DeliveryTime,
		dto.PriceForTwo,
	)
}

func menuItemFromDomain(item *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		Name:         item.Name(),
		Description:  item.Description(),
		Price:        item.Price(),
		Image:        item.Image(),
		Category:     item.Category(),
		IsAvailable:  item.IsAvailable(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreMenuItem(
		id,
		restaurantID,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.Image,
		dto.Category,
		dto.IsAvailable,
	)
}

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Add saves a new restaurant to the database.
func (r *GormRestaurantRepository) Add(ctx context.Context, restaurant *catalog.Restaurant) error {
	dto := fromDomain(restaurant)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddMenuItem saves a new menu item to the database.
func (r *GormRestaurantRepository) AddMenuItem(ctx context.Context, item *catalog.MenuItem) error {
	dto := menuItemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a restaurant by id.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, "id = ?", id.Bytes())
}

// GetAll retrieves every restaurant in the catalog.
func (r *GormRestaurantRepository) GetAll(ctx context.Context) ([]*catalog.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	restaurants := make([]*catalog.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		restaurant, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

// MenuItems retrieves all menu items of one restaurant.
func (r *GormRestaurantRepository) MenuItems(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]*catalog.MenuItem, error) {
	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Order("category, name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*catalog.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := menuItemToDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *GormRestaurantRepository) first(
	ctx context.Context,
	cond string,
	arg any,
) (*catalog.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", arg)
		}
		return nil, err
	}

	return toDomain(dto)
}
