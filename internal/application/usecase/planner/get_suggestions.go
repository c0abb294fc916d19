package planner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/planning"
)

// GetSuggestionsInput represents the input for computing suggestions.
type GetSuggestionsInput struct {
	UserID        uuid.UUID
	ReferenceDate string // YYYY-MM-DD, defaults to today
}

// GetSuggestionsOutput represents the per-goal suggestions.
type GetSuggestionsOutput struct {
	ReferenceDate time.Time
	InflationRate float64
	Results       []entity.GoalSuggestionResult
}

// GetSuggestionsUseCase computes monthly investment suggestions for every goal.
type GetSuggestionsUseCase struct {
	state   stateAccess
	planner *planning.Planner
	clock   adapter.Clock
}

// NewGetSuggestionsUseCase creates a new GetSuggestionsUseCase instance.
func NewGetSuggestionsUseCase(
	goalRepo adapter.GoalRepository,
	allocationRepo adapter.AllocationRepository,
	planner *planning.Planner,
	clock adapter.Clock,
) *GetSuggestionsUseCase {
	return &GetSuggestionsUseCase{
		state:   stateAccess{goalRepo: goalRepo, allocationRepo: allocationRepo},
		planner: planner,
		clock:   clock,
	}
}

// Execute computes the suggestions.
func (uc *GetSuggestionsUseCase) Execute(ctx context.Context, input GetSuggestionsInput) (*GetSuggestionsOutput, error) {
	today := uc.clock.Now()

	referenceDate, err := parseReferenceDate(input.ReferenceDate, today)
	if err != nil {
		return nil, err
	}

	state, err := uc.state.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetSuggestionsOutput{
		ReferenceDate: referenceDate,
		InflationRate: uc.planner.InflationRate(),
		Results:       uc.planner.Suggest(state.Goals, state.Allocations, referenceDate, today),
	}, nil
}
