package planner

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// ImportStateInput represents the input for importing a planner document.
type ImportStateInput struct {
	UserID   uuid.UUID
	Document valueobject.PlannerDocument
}

// ImportStateOutput holds the state as stored after the import.
type ImportStateOutput struct {
	Document valueobject.PlannerDocument
}

// ImportStateUseCase replaces a user's goals and allocations with a document.
type ImportStateUseCase struct {
	state stateAccess
}

// NewImportStateUseCase creates a new ImportStateUseCase instance.
func NewImportStateUseCase(stateRepo adapter.PlannerStateRepository) *ImportStateUseCase {
	return &ImportStateUseCase{
		state: stateAccess{stateRepo: stateRepo},
	}
}

// Execute performs the import.
func (uc *ImportStateUseCase) Execute(ctx context.Context, input ImportStateInput) (*ImportStateOutput, error) {
	state, err := uc.state.replace(ctx, input.UserID, input.Document, "import")
	if err != nil {
		return nil, err
	}
	return &ImportStateOutput{Document: valueobject.NewPlannerDocument(state)}, nil
}
