package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/integration/persistence/model"
)

// allocationRepository implements the adapter.AllocationRepository interface.
type allocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository creates a new allocation repository instance.
func NewAllocationRepository(db *gorm.DB) adapter.AllocationRepository {
	return &allocationRepository{
		db: db,
	}
}

// FindByUserID retrieves all allocations of a user grouped by horizon.
func (r *allocationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (entity.AllocationsByHorizon, error) {
	var rows []model.AllocationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("horizon ASC").
		Order("position ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	allocations := entity.AllocationsByHorizon{}
	for _, row := range rows {
		horizon := entity.Horizon(row.Horizon)
		allocations[horizon] = append(allocations[horizon], row.ToEntity())
	}
	return allocations, nil
}

// ReplaceHorizon replaces the ordered choices of one horizon.
func (r *allocationRepository) ReplaceHorizon(ctx context.Context, userID uuid.UUID, horizon entity.Horizon, choices []entity.InvestmentChoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceHorizon(tx, userID, horizon, choices)
	})
}

// ReplaceAll replaces every horizon. Horizons missing from allocations end up empty.
func (r *allocationRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, allocations entity.AllocationsByHorizon) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceAllocations(tx, userID, allocations)
	})
}

func replaceAllocations(tx *gorm.DB, userID uuid.UUID, allocations entity.AllocationsByHorizon) error {
	for _, horizon := range entity.Horizons {
		if err := replaceHorizon(tx, userID, horizon, allocations[horizon]); err != nil {
			return err
		}
	}
	return nil
}

func replaceHorizon(tx *gorm.DB, userID uuid.UUID, horizon entity.Horizon, choices []entity.InvestmentChoice) error {
	if err := tx.Where("user_id = ? AND horizon = ?", userID, string(horizon)).
		Delete(&model.AllocationModel{}).Error; err != nil {
		return err
	}

	if len(choices) == 0 {
		return nil
	}

	rows := model.AllocationsFromEntities(userID, horizon, choices)
	return tx.Create(&rows).Error
}
