// Package schedulerepo persists scheduled status transitions. Stored rows
// are what the recovery sweep reads to re-fire transitions whose in-memory
// timers were lost to a restart.
package schedulerepo

import (
	"context"
	"time"

	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"
	"delify/internal/core/domain/model/schedule"
	"delify/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransitionDTO represents the database structure for persisting scheduled
// transitions. FiredAt stays NULL while the transition is pending.
type TransitionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	TargetStatus string
	FireAt       time.Time `gorm:"index"`
	FiredAt      *time.Time
}

// TableName overrides GORM's default naming convention to use "scheduled_transitions".
func (TransitionDTO) TableName() string {
	return "scheduled_transitions"
}

func fromDomain(transition *schedule.Transition) TransitionDTO {
	return TransitionDTO{
		ID:           transition.ID().Bytes(),
		OrderID:      transition.OrderID().Bytes(),
		TargetStatus: transition.TargetStatus().String(),
		FireAt:       transition.FireAt(),
		FiredAt:      transition.FiredAt(),
	}
}

func toDomain(dto TransitionDTO) (*schedule.Transition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.TargetStatus)
	if err != nil {
		return nil, err
	}

	return schedule.RestoreTransition(id, orderID, status, dto.FireAt, dto.FiredAt)
}

// GormTransitionRepository implements TransitionRepository using GORM.
type GormTransitionRepository struct {
	db *gorm.DB
}

// NewGormTransitionRepository creates a new GORM transition repository.
func NewGormTransitionRepository(db *gorm.DB) *GormTransitionRepository {
	return &GormTransitionRepository{db: db}
}

// Add saves a new pending transition to the database.
func (r *GormTransitionRepository) Add(ctx context.Context, transition *schedule.Transition) error {
	dto := fromDomain(transition)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves changes, normally the fired marker, to a transition.
func (r *GormTransitionRepository) Update(ctx context.Context, transition *schedule.Transition) error {
	dto := fromDomain(transition)
	result := r.db.WithContext(ctx).Model(&TransitionDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"target_status": dto.TargetStatus,
		"fire_at":       dto.FireAt,
		"fired_at":      dto.FiredAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("transition", transition.ID().String())
	}

	return nil
}

// ClaimFired marks an unfired transition as fired, returning false when the
// row was already claimed by a concurrent timer or sweep.
func (r *GormTransitionRepository) ClaimFired(
	ctx context.Context,
	id kernel.UUID,
	firedAt time.Time,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&TransitionDTO{}).
		Where("id = ? AND fired_at IS NULL", id.Bytes()).
		Update("fired_at", firedAt)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// GetDue retrieves every unfired transition with fireAt <= now, ordered by
// fireAt ascending.
func (r *GormTransitionRepository) GetDue(
	ctx context.Context,
	now time.Time,
) ([]*schedule.Transition, error) {
	var dtos []TransitionDTO
	err := r.db.WithContext(ctx).
		Where("fired_at IS NULL AND fire_at <= ?", now).
		Order("fire_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	transitions := make([]*schedule.Transition, 0, len(dtos))
	for _, dto := range dtos {
		transition, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		transitions = append(transitions, transition)
	}

	return transitions, nil
}

// DeleteForOrder removes all transitions of one order, fired or not.
func (r *GormTransitionRepository) DeleteForOrder(ctx context.Context, orderID kernel.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&TransitionDTO{}, "order_id = ?", orderID.Bytes()).Error
}
