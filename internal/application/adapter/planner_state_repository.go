package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// PlannerStateRepository writes a whole planner state at once.
type PlannerStateRepository interface {
	// ReplaceState swaps the user's goals and allocations for the ones in state.
	// Either both are replaced or neither is. Goal ids already owned by another
	// user are reassigned on the entities in state.
	ReplaceState(ctx context.Context, userID uuid.UUID, state *entity.PlannerState) error
}
