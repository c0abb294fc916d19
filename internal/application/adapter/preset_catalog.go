package adapter

import "github.com/goal-planner/backend/internal/domain/entity"

// AllocationPresetCatalog exposes the named allocation templates users can apply.
type AllocationPresetCatalog interface {
	// List returns every preset in catalog order.
	List() []entity.AllocationPreset

	// Find returns the preset with the given name, or false.
	Find(name string) (entity.AllocationPreset, bool)
}
