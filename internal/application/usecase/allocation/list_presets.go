package allocation

import (
	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// ListPresetsOutput represents the output of listing presets.
type ListPresetsOutput struct {
	Presets []entity.AllocationPreset
}

// ListPresetsUseCase returns the allocation preset catalog.
type ListPresetsUseCase struct {
	catalog adapter.AllocationPresetCatalog
}

// NewListPresetsUseCase creates a new ListPresetsUseCase instance.
func NewListPresetsUseCase(catalog adapter.AllocationPresetCatalog) *ListPresetsUseCase {
	return &ListPresetsUseCase{catalog: catalog}
}

// Execute lists the presets.
func (uc *ListPresetsUseCase) Execute() *ListPresetsOutput {
	return &ListPresetsOutput{Presets: uc.catalog.List()}
}
