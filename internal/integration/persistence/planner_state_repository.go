package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// plannerStateRepository implements the adapter.PlannerStateRepository interface.
type plannerStateRepository struct {
	db *gorm.DB
}

// NewPlannerStateRepository creates a new planner state repository instance.
func NewPlannerStateRepository(db *gorm.DB) adapter.PlannerStateRepository {
	return &plannerStateRepository{
		db: db,
	}
}

// ReplaceState replaces goals and allocations in a single transaction.
func (r *plannerStateRepository) ReplaceState(ctx context.Context, userID uuid.UUID, state *entity.PlannerState) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replaceGoals(tx, userID, state.Goals); err != nil {
			return fmt.Errorf("failed to replace goals: %w", err)
		}
		if err := replaceAllocations(tx, userID, state.Allocations); err != nil {
			return fmt.Errorf("failed to replace allocations: %w", err)
		}
		return nil
	})
}
