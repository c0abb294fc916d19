package dto

import "github.com/goal-planner/backend/internal/domain/entity"

// InvestmentChoiceDTO represents one investment choice in requests and responses.
type InvestmentChoiceDTO struct {
	Name                           string  `json:"name"`
	AllocationPercentage           float64 `json:"allocation_percentage"`
	ExpectedAnnualReturnPercentage float64 `json:"expected_annual_return_percentage"`
}

// SetHorizonAllocationRequest represents the request body for replacing one horizon.
type SetHorizonAllocationRequest struct {
	Choices []InvestmentChoiceDTO `json:"choices" binding:"required"`
}

// HorizonAllocationResponse represents one horizon's choices.
type HorizonAllocationResponse struct {
	Horizon string                `json:"horizon"`
	Choices []InvestmentChoiceDTO `json:"choices"`
}

// AllocationsResponse represents the choices of every horizon.
type AllocationsResponse struct {
	Allocations map[string][]InvestmentChoiceDTO `json:"allocations"`
}

// PresetResponse represents an allocation preset.
type PresetResponse struct {
	Name        string                           `json:"name"`
	Description string                           `json:"description"`
	Allocations map[string][]InvestmentChoiceDTO `json:"allocations"`
}

// PresetListResponse represents the preset catalog.
type PresetListResponse struct {
	Presets []PresetResponse `json:"presets"`
}

// ToInvestmentChoices converts request DTOs to domain choices.
func ToInvestmentChoices(dtos []InvestmentChoiceDTO) []entity.InvestmentChoice {
	choices := make([]entity.InvestmentChoice, len(dtos))
	for i, d := range dtos {
		choices[i] = entity.InvestmentChoice{
			Name:                           d.Name,
			AllocationPercentage:           d.AllocationPercentage,
			ExpectedAnnualReturnPercentage: d.ExpectedAnnualReturnPercentage,
		}
	}
	return choices
}

// ToInvestmentChoiceDTOs converts domain choices to DTOs.
func ToInvestmentChoiceDTOs(choices []entity.InvestmentChoice) []InvestmentChoiceDTO {
	dtos := make([]InvestmentChoiceDTO, len(choices))
	for i, c := range choices {
		dtos[i] = InvestmentChoiceDTO{
			Name:                           c.Name,
			AllocationPercentage:           c.AllocationPercentage,
			ExpectedAnnualReturnPercentage: c.ExpectedAnnualReturnPercentage,
		}
	}
	return dtos
}

// ToAllocationsMap converts allocations to a map that always holds every horizon.
func ToAllocationsMap(allocations entity.AllocationsByHorizon) map[string][]InvestmentChoiceDTO {
	out := make(map[string][]InvestmentChoiceDTO, len(entity.Horizons))
	for _, h := range entity.Horizons {
		out[string(h)] = ToInvestmentChoiceDTOs(allocations[h])
	}
	return out
}

// ToPresetListResponse converts presets to a PresetListResponse.
func ToPresetListResponse(presets []entity.AllocationPreset) PresetListResponse {
	response := PresetListResponse{Presets: make([]PresetResponse, len(presets))}
	for i, p := range presets {
		response.Presets[i] = PresetResponse{
			Name:        p.Name,
			Description: p.Description,
			Allocations: ToAllocationsMap(p.Allocations),
		}
	}
	return response
}
