package allocation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// SetHorizonAllocationInput represents the input for replacing one horizon's choices.
type SetHorizonAllocationInput struct {
	UserID  uuid.UUID
	Horizon string
	Choices []entity.InvestmentChoice
}

// SetHorizonAllocationOutput represents the output of replacing one horizon's choices.
type SetHorizonAllocationOutput struct {
	Horizon entity.Horizon
	Choices []entity.InvestmentChoice
}

// SetHorizonAllocationUseCase replaces the ordered choice list of a horizon.
type SetHorizonAllocationUseCase struct {
	allocationRepo adapter.AllocationRepository
}

// NewSetHorizonAllocationUseCase creates a new SetHorizonAllocationUseCase instance.
func NewSetHorizonAllocationUseCase(allocationRepo adapter.AllocationRepository) *SetHorizonAllocationUseCase {
	return &SetHorizonAllocationUseCase{allocationRepo: allocationRepo}
}

// Execute performs the replacement. Each percentage must lie in 0-100; the
// weights are not required to sum to 100.
func (uc *SetHorizonAllocationUseCase) Execute(ctx context.Context, input SetHorizonAllocationInput) (*SetHorizonAllocationOutput, error) {
	horizon, err := ParseHorizon(input.Horizon)
	if err != nil {
		return nil, err
	}

	choices := make([]entity.InvestmentChoice, 0, len(input.Choices))
	for _, c := range input.Choices {
		if err := validateChoice(c); err != nil {
			return nil, err
		}
		c.Name = strings.TrimSpace(c.Name)
		choices = append(choices, c)
	}

	if err := uc.allocationRepo.ReplaceHorizon(ctx, input.UserID, horizon, choices); err != nil {
		return nil, fmt.Errorf("failed to save allocations: %w", err)
	}

	return &SetHorizonAllocationOutput{Horizon: horizon, Choices: choices}, nil
}

// ParseHorizon converts a case-insensitive horizon name.
func ParseHorizon(value string) (entity.Horizon, error) {
	horizon := entity.Horizon(strings.ToUpper(strings.TrimSpace(value)))
	if !horizon.IsValid() {
		return "", domainerror.NewAllocationError(
			domainerror.ErrCodeInvalidHorizon,
			"horizon must be 'SHORT', 'MEDIUM' or 'LONG'",
			domainerror.ErrInvalidHorizon,
		)
	}
	return horizon, nil
}

func validateChoice(c entity.InvestmentChoice) error {
	if strings.TrimSpace(c.Name) == "" {
		return domainerror.NewAllocationError(
			domainerror.ErrCodeInvalidInvestmentName,
			"investment name is required",
			domainerror.ErrInvalidInvestmentName,
		)
	}
	if c.AllocationPercentage < 0 || c.AllocationPercentage > 100 {
		return domainerror.NewAllocationError(
			domainerror.ErrCodeInvalidAllocationPercentage,
			fmt.Sprintf("allocation percentage for %q must be between 0 and 100", c.Name),
			domainerror.ErrInvalidAllocationPercentage,
		)
	}
	return nil
}
