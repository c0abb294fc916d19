package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// SaveSnapshotInput represents the input for saving a snapshot.
type SaveSnapshotInput struct {
	UserID uuid.UUID
}

// SaveSnapshotOutput describes the saved snapshot.
type SaveSnapshotOutput struct {
	SavedAt   time.Time
	GoalCount int
}

// SaveSnapshotUseCase writes the current planner state to the snapshot store.
type SaveSnapshotUseCase struct {
	state stateAccess
	store adapter.PlannerStateStore
	clock adapter.Clock
}

// NewSaveSnapshotUseCase creates a new SaveSnapshotUseCase instance.
func NewSaveSnapshotUseCase(
	goalRepo adapter.GoalRepository,
	allocationRepo adapter.AllocationRepository,
	store adapter.PlannerStateStore,
	clock adapter.Clock,
) *SaveSnapshotUseCase {
	return &SaveSnapshotUseCase{
		state: stateAccess{goalRepo: goalRepo, allocationRepo: allocationRepo},
		store: store,
		clock: clock,
	}
}

// Execute saves the snapshot.
func (uc *SaveSnapshotUseCase) Execute(ctx context.Context, input SaveSnapshotInput) (*SaveSnapshotOutput, error) {
	state, err := uc.state.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	doc := valueobject.NewPlannerDocument(state)
	if err := uc.store.Save(ctx, input.UserID, doc); err != nil {
		slog.Error("Failed to save planner snapshot", "user_id", input.UserID, "error", err)
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeSnapshotUnavailable,
			"failed to save snapshot",
			domainerror.ErrSnapshotUnavailable,
		)
	}

	return &SaveSnapshotOutput{
		SavedAt:   uc.clock.Now().UTC(),
		GoalCount: len(doc.FinancialGoals),
	}, nil
}

// RestoreSnapshotInput represents the input for restoring a snapshot.
type RestoreSnapshotInput struct {
	UserID uuid.UUID
}

// RestoreSnapshotOutput holds the restored state.
type RestoreSnapshotOutput struct {
	Found    bool
	Document valueobject.PlannerDocument
}

// RestoreSnapshotUseCase replaces the planner state with the stored snapshot.
// When there is no usable snapshot the planner is reset to an empty state.
type RestoreSnapshotUseCase struct {
	state stateAccess
	store adapter.PlannerStateStore
}

// NewRestoreSnapshotUseCase creates a new RestoreSnapshotUseCase instance.
func NewRestoreSnapshotUseCase(
	stateRepo adapter.PlannerStateRepository,
	store adapter.PlannerStateStore,
) *RestoreSnapshotUseCase {
	return &RestoreSnapshotUseCase{
		state: stateAccess{stateRepo: stateRepo},
		store: store,
	}
}

// Execute restores the snapshot.
func (uc *RestoreSnapshotUseCase) Execute(ctx context.Context, input RestoreSnapshotInput) (*RestoreSnapshotOutput, error) {
	doc, found, err := uc.store.Load(ctx, input.UserID)
	if err != nil {
		slog.Error("Failed to load planner snapshot", "user_id", input.UserID, "error", err)
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeSnapshotUnavailable,
			"failed to load snapshot",
			domainerror.ErrSnapshotUnavailable,
		)
	}
	if !found {
		doc = valueobject.PlannerDocument{}
	}

	state, err := uc.state.replace(ctx, input.UserID, doc, "snapshot")
	if err != nil {
		return nil, err
	}

	return &RestoreSnapshotOutput{
		Found:    found,
		Document: valueobject.NewPlannerDocument(state),
	}, nil
}
