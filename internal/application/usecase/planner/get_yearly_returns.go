package planner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/planning"
)

// GetYearlyReturnsInput represents the input for the yearly projection.
type GetYearlyReturnsInput struct {
	UserID        uuid.UUID
	ReferenceDate string // YYYY-MM-DD, defaults to today
}

// GetYearlyReturnsOutput represents the year-by-year projection of every goal.
type GetYearlyReturnsOutput struct {
	ReferenceDate time.Time
	YearlyReturns []entity.YearlyReturn
}

// GetYearlyReturnsUseCase projects the cumulative value of each suggested
// instrument at every year end of a goal's term.
type GetYearlyReturnsUseCase struct {
	state   stateAccess
	planner *planning.Planner
	clock   adapter.Clock
}

// NewGetYearlyReturnsUseCase creates a new GetYearlyReturnsUseCase instance.
func NewGetYearlyReturnsUseCase(
	goalRepo adapter.GoalRepository,
	allocationRepo adapter.AllocationRepository,
	planner *planning.Planner,
	clock adapter.Clock,
) *GetYearlyReturnsUseCase {
	return &GetYearlyReturnsUseCase{
		state:   stateAccess{goalRepo: goalRepo, allocationRepo: allocationRepo},
		planner: planner,
		clock:   clock,
	}
}

// Execute computes the projection.
func (uc *GetYearlyReturnsUseCase) Execute(ctx context.Context, input GetYearlyReturnsInput) (*GetYearlyReturnsOutput, error) {
	today := uc.clock.Now()

	referenceDate, err := parseReferenceDate(input.ReferenceDate, today)
	if err != nil {
		return nil, err
	}

	state, err := uc.state.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	results := uc.planner.Suggest(state.Goals, state.Allocations, referenceDate, today)

	return &GetYearlyReturnsOutput{
		ReferenceDate: referenceDate,
		YearlyReturns: uc.planner.YearlyReturns(state.Goals, results, today),
	}, nil
}
