package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvestmentChoice is one allocation line within a horizon bucket.
// Percentages are expressed as 0-100.
type InvestmentChoice struct {
	Name                           string
	AllocationPercentage           float64
	ExpectedAnnualReturnPercentage float64
}

// AllocationsByHorizon maps a horizon to its ordered list of investment choices.
type AllocationsByHorizon map[Horizon][]InvestmentChoice

// Clone returns a deep copy of the allocations.
func (a AllocationsByHorizon) Clone() AllocationsByHorizon {
	out := make(AllocationsByHorizon, len(a))
	for horizon, choices := range a {
		out[horizon] = append([]InvestmentChoice(nil), choices...)
	}
	return out
}

// AllocationPreset is a named, ready-made set of allocations.
type AllocationPreset struct {
	Name        string
	Description string
	Allocations AllocationsByHorizon
}

// InvestmentSuggestion is the monthly amount suggested for one instrument.
type InvestmentSuggestion struct {
	Name                           string
	MonthlyAmount                  float64
	ExpectedAnnualReturnPercentage float64
}

// GoalSuggestionResult is the per-goal output of the suggestion orchestrator.
type GoalSuggestionResult struct {
	GoalID                  uuid.UUID
	GoalName                string
	Horizon                 Horizon
	InflationAdjustedTarget float64
	MonthlyTotal            float64
	Active                  bool
	Suggestions             []InvestmentSuggestion
	CurrentValue            float64
}

// YearValue is the cumulative projected value at the end of a calendar year.
type YearValue struct {
	Year            int
	CumulativeValue float64
}

// InstrumentReturns is the year-by-year projection of one instrument.
type InstrumentReturns struct {
	Name          string
	ReturnsByYear []YearValue
}

// YearlyReturn is the year-by-year projection of every instrument of a goal.
type YearlyReturn struct {
	GoalID        uuid.UUID
	GoalName      string
	PerInstrument []InstrumentReturns
}

// PlannerState is the full set of user inputs the planner works on.
type PlannerState struct {
	Goals       []*Goal
	Allocations AllocationsByHorizon
	UpdatedAt   time.Time
}

// NewPlannerState returns a fresh, empty planner state.
func NewPlannerState() *PlannerState {
	return &PlannerState{
		Goals:       []*Goal{},
		Allocations: AllocationsByHorizon{},
	}
}
