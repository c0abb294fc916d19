package planning

import (
	"math"
	"time"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// FutureValue returns the value of contribution paid at the start of each month
// for months, growing at annualReturnPercentage.
func FutureValue(contribution float64, months int, annualReturnPercentage float64) float64 {
	if months <= 0 || contribution <= 0 {
		return 0
	}

	n := float64(months)
	r := MonthlyRate(annualReturnPercentage)
	if r == 0 {
		return contribution * n
	}

	value := contribution * (math.Pow(1+r, n) - 1) / r * (1 + r)
	if !isFinite(value) {
		return 0
	}
	return value
}

// CurrentPortfolioValue estimates what the suggested plan would have
// accumulated by today had it been followed since the goal's start.
func CurrentPortfolioValue(suggestions []entity.InvestmentSuggestion, goal *entity.Goal, today time.Time) float64 {
	if len(suggestions) == 0 || goal.Kind() == entity.GoalKindRecurring {
		return 0
	}

	months := min(goal.ElapsedMonths(today), goal.MonthTerm())
	if months <= 0 {
		return 0
	}

	total := 0.0
	for _, s := range suggestions {
		total += FutureValue(s.MonthlyAmount, months, s.ExpectedAnnualReturnPercentage)
	}
	return total
}
