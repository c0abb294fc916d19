package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// AllocationRepository defines the interface for investment allocation persistence.
type AllocationRepository interface {
	// FindByUserID returns the user's choices grouped by horizon, in stored order.
	// Horizons without choices are absent from the map.
	FindByUserID(ctx context.Context, userID uuid.UUID) (entity.AllocationsByHorizon, error)

	// ReplaceHorizon replaces the choice list for a single horizon.
	ReplaceHorizon(ctx context.Context, userID uuid.UUID, horizon entity.Horizon, choices []entity.InvestmentChoice) error

	// ReplaceAll replaces every horizon's list with the given allocations.
	ReplaceAll(ctx context.Context, userID uuid.UUID, allocations entity.AllocationsByHorizon) error
}
