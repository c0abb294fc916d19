// Package allocation contains investment allocation use cases.
package allocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// GetAllocationsInput represents the input for reading allocations.
type GetAllocationsInput struct {
	UserID uuid.UUID
}

// GetAllocationsOutput represents the output of reading allocations.
type GetAllocationsOutput struct {
	Allocations entity.AllocationsByHorizon
}

// GetAllocationsUseCase returns a user's allocations for every horizon.
type GetAllocationsUseCase struct {
	allocationRepo adapter.AllocationRepository
}

// NewGetAllocationsUseCase creates a new GetAllocationsUseCase instance.
func NewGetAllocationsUseCase(allocationRepo adapter.AllocationRepository) *GetAllocationsUseCase {
	return &GetAllocationsUseCase{allocationRepo: allocationRepo}
}

// Execute performs the allocation lookup.
func (uc *GetAllocationsUseCase) Execute(ctx context.Context, input GetAllocationsInput) (*GetAllocationsOutput, error) {
	allocations, err := uc.allocationRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}
	return &GetAllocationsOutput{Allocations: allocations}, nil
}
