package allocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// ApplyPresetInput represents the input for applying a preset.
type ApplyPresetInput struct {
	UserID     uuid.UUID
	PresetName string
}

// ApplyPresetOutput represents the output of applying a preset.
type ApplyPresetOutput struct {
	Allocations entity.AllocationsByHorizon
}

// ApplyPresetUseCase replaces every horizon with a preset's allocations.
type ApplyPresetUseCase struct {
	allocationRepo adapter.AllocationRepository
	catalog        adapter.AllocationPresetCatalog
}

// NewApplyPresetUseCase creates a new ApplyPresetUseCase instance.
func NewApplyPresetUseCase(allocationRepo adapter.AllocationRepository, catalog adapter.AllocationPresetCatalog) *ApplyPresetUseCase {
	return &ApplyPresetUseCase{
		allocationRepo: allocationRepo,
		catalog:        catalog,
	}
}

// Execute applies the preset.
func (uc *ApplyPresetUseCase) Execute(ctx context.Context, input ApplyPresetInput) (*ApplyPresetOutput, error) {
	preset, ok := uc.catalog.Find(input.PresetName)
	if !ok {
		return nil, domainerror.NewAllocationError(
			domainerror.ErrCodePresetNotFound,
			fmt.Sprintf("preset %q not found", input.PresetName),
			domainerror.ErrPresetNotFound,
		)
	}

	allocations := preset.Allocations.Clone()
	if err := uc.allocationRepo.ReplaceAll(ctx, input.UserID, allocations); err != nil {
		return nil, fmt.Errorf("failed to apply preset: %w", err)
	}

	return &ApplyPresetOutput{Allocations: allocations}, nil
}
