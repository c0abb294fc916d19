package planning

import (
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// Planner builds per-goal suggestions and yearly projections.
// It holds configuration only and keeps no state between calls.
type Planner struct {
	inflationRate float64
}

// NewPlanner creates a Planner that inflates one-time targets by inflationRate (0.06 = 6%).
func NewPlanner(inflationRate float64) *Planner {
	return &Planner{inflationRate: inflationRate}
}

// InflationRate returns the configured inflation rate.
func (p *Planner) InflationRate() float64 {
	return p.inflationRate
}

// Suggest returns one result per goal, in goal order.
//
// referenceDate decides whether a goal is active: inactive goals get no
// suggestions. today drives elapsed-time math for the current value, which is
// computed whether or not the goal is active.
func (p *Planner) Suggest(
	goals []*entity.Goal,
	allocations entity.AllocationsByHorizon,
	referenceDate, today time.Time,
) []entity.GoalSuggestionResult {
	results := make([]entity.GoalSuggestionResult, 0, len(goals))

	for _, goal := range goals {
		horizon := goal.Horizon()
		target := goal.InflationAdjustedTarget(p.inflationRate)

		result := entity.GoalSuggestionResult{
			GoalID:                  goal.ID,
			GoalName:                goal.Name,
			Horizon:                 horizon,
			InflationAdjustedTarget: target,
			Active:                  goal.IsActiveOn(referenceDate, today),
			Suggestions:             []entity.InvestmentSuggestion{},
		}

		choices := allocations[horizon]
		if len(choices) == 0 {
			results = append(results, result)
			continue
		}

		monthly := MonthlyContribution(choices, target, goal.MonthTerm())
		suggestions := distribute(monthly, choices)

		result.CurrentValue = CurrentPortfolioValue(suggestions, goal, today)
		if result.Active {
			result.MonthlyTotal = monthly
			result.Suggestions = suggestions
		}

		results = append(results, result)
	}

	return results
}

// YearlyReturns projects, for every goal with suggestions, the cumulative value
// of each instrument at the end of every year of the goal's term.
func (p *Planner) YearlyReturns(
	goals []*entity.Goal,
	results []entity.GoalSuggestionResult,
	today time.Time,
) []entity.YearlyReturn {
	byGoal := make(map[uuid.UUID]entity.GoalSuggestionResult, len(results))
	for _, r := range results {
		byGoal[r.GoalID] = r
	}

	returns := make([]entity.YearlyReturn, 0, len(goals))
	for _, goal := range goals {
		result, ok := byGoal[goal.ID]
		if !ok {
			continue
		}
		returns = append(returns, ProjectYearly(goal, result.Suggestions, today))
	}
	return returns
}

// ProjectYearly computes the year-end checkpoints for one goal. Checkpoints run
// from the year after the investment start up to start year + term. The target
// year checkpoint covers exactly MonthTerm() months.
func ProjectYearly(goal *entity.Goal, suggestions []entity.InvestmentSuggestion, today time.Time) entity.YearlyReturn {
	startYear := goal.InvestmentStartDate(today).Year()
	endYear := startYear + goal.Term()
	monthTerm := goal.MonthTerm()

	yearly := entity.YearlyReturn{
		GoalID:        goal.ID,
		GoalName:      goal.Name,
		PerInstrument: make([]entity.InstrumentReturns, 0, len(suggestions)),
	}

	for _, s := range suggestions {
		instrument := entity.InstrumentReturns{
			Name:          s.Name,
			ReturnsByYear: []entity.YearValue{},
		}
		for year := startYear + 1; year <= endYear; year++ {
			months := min((year-startYear)*int(monthsPerYear), monthTerm)
			if year == endYear {
				months = monthTerm
			}
			instrument.ReturnsByYear = append(instrument.ReturnsByYear, entity.YearValue{
				Year:            year,
				CumulativeValue: FutureValue(s.MonthlyAmount, months, s.ExpectedAnnualReturnPercentage),
			})
		}
		yearly.PerInstrument = append(yearly.PerInstrument, instrument)
	}

	return yearly
}

// distribute splits the monthly amount across choices by allocation weight.
func distribute(monthly float64, choices []entity.InvestmentChoice) []entity.InvestmentSuggestion {
	suggestions := make([]entity.InvestmentSuggestion, 0, len(choices))
	for _, choice := range choices {
		suggestions = append(suggestions, entity.InvestmentSuggestion{
			Name:                           choice.Name,
			MonthlyAmount:                  monthly * choice.AllocationPercentage / percentDivisor,
			ExpectedAnnualReturnPercentage: choice.ExpectedAnnualReturnPercentage,
		})
	}
	return suggestions
}
