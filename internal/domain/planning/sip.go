// Package planning implements the goal-based investment calculations: SIP
// factors, the monthly contribution solver, future value projections and the
// per-goal suggestion and yearly return builders.
//
// Every function is pure and safe for concurrent use. Degenerate inputs yield
// zero instead of an error.
package planning

import (
	"math"

	"github.com/goal-planner/backend/internal/domain/entity"
)

const (
	percentDivisor = 100.0
	monthsPerYear  = 12.0
)

// MonthlyRate converts an annual return percentage (12 = 12%) into a monthly rate.
func MonthlyRate(annualReturnPercentage float64) float64 {
	return annualReturnPercentage / percentDivisor / monthsPerYear
}

// SIPFactor returns the annuity-due future value factor for months contributions
// at monthlyRate, scaled by the allocation weight (0-100).
//
//	r == 0: n * p/100
//	r != 0: ((1+r)^n - 1) * (1+r) / r * p/100
func SIPFactor(monthlyRate float64, months int, allocationPercentage float64) float64 {
	weight := allocationPercentage / percentDivisor
	n := float64(months)

	if monthlyRate == 0 {
		return n * weight
	}

	growth := math.Pow(1+monthlyRate, n)
	return (growth - 1) * (1 + monthlyRate) / monthlyRate * weight
}

// MonthlyContribution solves for the single monthly amount that, split across
// choices by weight, grows to targetAmount after months.
func MonthlyContribution(choices []entity.InvestmentChoice, targetAmount float64, months int) float64 {
	if months <= 0 {
		return 0
	}

	combinedFactor := 0.0
	for _, choice := range choices {
		rate := MonthlyRate(choice.ExpectedAnnualReturnPercentage)
		combinedFactor += SIPFactor(rate, months, choice.AllocationPercentage)
	}

	if combinedFactor == 0 || !isFinite(combinedFactor) {
		return 0
	}

	amount := targetAmount / combinedFactor
	if !isFinite(amount) {
		return 0
	}
	return amount
}

// Verify projects monthlyAmount split across choices by weight and returns the
// combined future value after months. It is the inverse of MonthlyContribution.
func Verify(monthlyAmount float64, choices []entity.InvestmentChoice, months int) float64 {
	total := 0.0
	for _, choice := range choices {
		share := monthlyAmount * choice.AllocationPercentage / percentDivisor
		total += FutureValue(share, months, choice.ExpectedAnnualReturnPercentage)
	}
	return total
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
