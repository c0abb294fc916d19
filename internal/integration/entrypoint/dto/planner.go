package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goal-planner/backend/internal/domain/entity"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// SuggestionResponse represents the monthly amount suggested for one instrument.
type SuggestionResponse struct {
	Name                           string  `json:"name"`
	MonthlyAmount                  float64 `json:"monthly_amount"`
	ExpectedAnnualReturnPercentage float64 `json:"expected_annual_return_percentage"`
}

// GoalSuggestionResponse represents the suggestions for one goal.
type GoalSuggestionResponse struct {
	GoalID                  string               `json:"goal_id"`
	GoalName                string               `json:"goal_name"`
	Horizon                 string               `json:"horizon"`
	InflationAdjustedTarget float64              `json:"inflation_adjusted_target"`
	MonthlyTotal            float64              `json:"monthly_total"`
	Active                  bool                 `json:"active"`
	Suggestions             []SuggestionResponse `json:"suggestions"`
	CurrentValue            float64              `json:"current_value"`
}

// SuggestionsResponse represents the response for the suggestions endpoint.
type SuggestionsResponse struct {
	ReferenceDate string                   `json:"reference_date"`
	InflationRate float64                  `json:"inflation_rate"`
	Goals         []GoalSuggestionResponse `json:"goals"`
}

// YearValueResponse represents one yearly checkpoint.
type YearValueResponse struct {
	Year            int     `json:"year"`
	CumulativeValue float64 `json:"cumulative_value"`
}

// InstrumentReturnsResponse represents the projection of one instrument.
type InstrumentReturnsResponse struct {
	Name          string              `json:"name"`
	ReturnsByYear []YearValueResponse `json:"returns_by_year"`
}

// YearlyReturnResponse represents the projection of one goal.
type YearlyReturnResponse struct {
	GoalID      string                      `json:"goal_id"`
	GoalName    string                      `json:"goal_name"`
	Instruments []InstrumentReturnsResponse `json:"instruments"`
}

// YearlyReturnsResponse represents the response for the yearly returns endpoint.
type YearlyReturnsResponse struct {
	ReferenceDate string                 `json:"reference_date"`
	Goals         []YearlyReturnResponse `json:"goals"`
}

// SnapshotResponse represents the result of saving a snapshot.
type SnapshotResponse struct {
	SavedAt   time.Time `json:"saved_at"`
	GoalCount int       `json:"goal_count"`
}

// RestoreSnapshotResponse represents the result of restoring a snapshot.
type RestoreSnapshotResponse struct {
	Found bool                        `json:"found"`
	State valueobject.PlannerDocument `json:"state"`
}

// ToSuggestionsResponse converts suggestion results to a SuggestionsResponse.
func ToSuggestionsResponse(referenceDate time.Time, inflationRate float64, results []entity.GoalSuggestionResult) SuggestionsResponse {
	goals := make([]GoalSuggestionResponse, len(results))
	for i, r := range results {
		suggestions := make([]SuggestionResponse, len(r.Suggestions))
		for j, s := range r.Suggestions {
			suggestions[j] = SuggestionResponse{
				Name:                           s.Name,
				MonthlyAmount:                  roundMoney(s.MonthlyAmount),
				ExpectedAnnualReturnPercentage: s.ExpectedAnnualReturnPercentage,
			}
		}
		goals[i] = GoalSuggestionResponse{
			GoalID:                  r.GoalID.String(),
			GoalName:                r.GoalName,
			Horizon:                 string(r.Horizon),
			InflationAdjustedTarget: roundMoney(r.InflationAdjustedTarget),
			MonthlyTotal:            roundMoney(r.MonthlyTotal),
			Active:                  r.Active,
			Suggestions:             suggestions,
			CurrentValue:            roundMoney(r.CurrentValue),
		}
	}

	return SuggestionsResponse{
		ReferenceDate: referenceDate.Format(DateLayout),
		InflationRate: inflationRate,
		Goals:         goals,
	}
}

// ToYearlyReturnsResponse converts yearly projections to a YearlyReturnsResponse.
func ToYearlyReturnsResponse(referenceDate time.Time, returns []entity.YearlyReturn) YearlyReturnsResponse {
	goals := make([]YearlyReturnResponse, len(returns))
	for i, r := range returns {
		instruments := make([]InstrumentReturnsResponse, len(r.PerInstrument))
		for j, inst := range r.PerInstrument {
			years := make([]YearValueResponse, len(inst.ReturnsByYear))
			for k, y := range inst.ReturnsByYear {
				years[k] = YearValueResponse{Year: y.Year, CumulativeValue: roundMoney(y.CumulativeValue)}
			}
			instruments[j] = InstrumentReturnsResponse{Name: inst.Name, ReturnsByYear: years}
		}
		goals[i] = YearlyReturnResponse{
			GoalID:      r.GoalID.String(),
			GoalName:    r.GoalName,
			Instruments: instruments,
		}
	}

	return YearlyReturnsResponse{
		ReferenceDate: referenceDate.Format(DateLayout),
		Goals:         goals,
	}
}

// roundMoney rounds an amount to cents, half away from zero. The engine keeps
// full precision, only responses are rounded.
func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
