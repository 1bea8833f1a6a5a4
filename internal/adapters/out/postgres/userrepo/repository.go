// Package userrepo persists user records synced from the external identity
// provider. The core mostly reads here; the only write path besides seeding
// is the default-address save during order placement.
package userrepo

import (
	"context"
	"errors"

	"delify/internal/core/domain/model/account"
	"delify/internal/core/domain/model/kernel"
	"delify/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalUID string    `gorm:"uniqueIndex"`
	Email       string    `gorm:"index"`
	Name        string
	Role        string
	Address     string
}

// TableName overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:          user.ID().Bytes(),
		ExternalUID: user.ExternalUID(),
		Email:       user.Email(),
		Name:        user.Name(),
		Role:        string(user.Role()),
		Address:     user.Address(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.ExternalUID, dto.Email, dto.Name, account.Role(dto.Role), dto.Address)
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user to the database.
func (r *GormUserRepository) Add(ctx context.Context, user *account.User) error {
	dto := fromDomain(user)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves changes to an existing user.
func (r *GormUserRepository) Update(ctx context.Context, user *account.User) error {
	dto := fromDomain(user)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"external_uid": dto.ExternalUID,
		"email":        dto.Email,
		"name":         dto.Name,
		"role":         dto.Role,
		"address":      dto.Address,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", user.ID().String())
	}

	return nil
}

// Get retrieves a user by internal id.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByExternalUID resolves a user by the auth-provider identity.
func (r *GormUserRepository) GetByExternalUID(
	ctx context.Context,
	externalUID string,
) (*account.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "external_uid = ?", externalUID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", externalUID)
		}
		return nil, err
	}

	return toDomain(dto)
}
