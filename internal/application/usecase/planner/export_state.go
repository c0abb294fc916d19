package planner

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// ExportStateInput represents the input for exporting the planner state.
type ExportStateInput struct {
	UserID uuid.UUID
}

// ExportStateOutput holds the exported document.
type ExportStateOutput struct {
	Document valueobject.PlannerDocument
}

// ExportStateUseCase serializes a user's goals and allocations.
type ExportStateUseCase struct {
	state stateAccess
}

// NewExportStateUseCase creates a new ExportStateUseCase instance.
func NewExportStateUseCase(goalRepo adapter.GoalRepository, allocationRepo adapter.AllocationRepository) *ExportStateUseCase {
	return &ExportStateUseCase{
		state: stateAccess{goalRepo: goalRepo, allocationRepo: allocationRepo},
	}
}

// Execute performs the export.
func (uc *ExportStateUseCase) Execute(ctx context.Context, input ExportStateInput) (*ExportStateOutput, error) {
	state, err := uc.state.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ExportStateOutput{Document: valueobject.NewPlannerDocument(state)}, nil
}
