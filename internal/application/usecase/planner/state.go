// Package planner contains the planning use cases: suggestions, projections
// and planner state import/export.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// stateAccess groups the repositories that together hold a user's planner state.
// stateRepo is only needed by use cases that call replace.
type stateAccess struct {
	goalRepo       adapter.GoalRepository
	allocationRepo adapter.AllocationRepository
	stateRepo      adapter.PlannerStateRepository
}

func (s stateAccess) load(ctx context.Context, userID uuid.UUID) (*entity.PlannerState, error) {
	goals, err := s.goalRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	allocations, err := s.allocationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}

	state := entity.NewPlannerState()
	if goals != nil {
		state.Goals = goals
	}
	if allocations != nil {
		state.Allocations = allocations
	}
	return state, nil
}

// replace overwrites the stored state with the content of doc. Entries the
// document cannot express as valid goals or choices are dropped with a warning.
func (s stateAccess) replace(ctx context.Context, userID uuid.UUID, doc valueobject.PlannerDocument, source string) (*entity.PlannerState, error) {
	state, problems := doc.ToState(userID)
	for _, p := range problems {
		slog.Warn("Skipping planner entry", "source", source, "user_id", userID, "error", p)
	}

	if err := s.stateRepo.ReplaceState(ctx, userID, state); err != nil {
		return nil, fmt.Errorf("failed to replace planner state: %w", err)
	}

	return state, nil
}

// parseReferenceDate parses a YYYY-MM-DD date, defaulting to today when empty.
func parseReferenceDate(value string, today time.Time) (time.Time, error) {
	if value == "" {
		return entity.DateOf(today), nil
	}

	date, err := time.Parse(valueobject.DocumentDateLayout, value)
	if err != nil {
		return time.Time{}, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidReferenceDate,
			"reference_date must use the YYYY-MM-DD format",
			domainerror.ErrInvalidReferenceDate,
		)
	}
	return date, nil
}
