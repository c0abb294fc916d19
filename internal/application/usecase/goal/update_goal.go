package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/planning"
)

// UpdateGoalInput represents the input for goal update. Every field is replaced.
type UpdateGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	GoalFields
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *GoalDetails
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	planner  *planning.Planner
	clock    adapter.Clock
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, planner *planning.Planner, clock adapter.Clock) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		planner:  planner,
		clock:    clock,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID, "modify")
	if err != nil {
		return nil, err
	}

	name, schedule, err := input.validate()
	if err != nil {
		return nil, err
	}

	goal.Replace(name, input.TargetAmount, schedule)

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: describe(goal, uc.planner, uc.clock.Now()),
	}, nil
}
