package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/planning"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalDetails
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	planner  *planning.Planner
	clock    adapter.Clock
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, planner *planning.Planner, clock adapter.Clock) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		planner:  planner,
		clock:    clock,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	today := uc.clock.Now()
	output := &ListGoalsOutput{
		Goals: make([]*GoalDetails, 0, len(goals)),
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, describe(g, uc.planner, today))
	}

	return output, nil
}
