// Package valueobject contains immutable domain value objects.
package valueobject

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// DocumentDateLayout is the calendar date format used in planner documents.
const DocumentDateLayout = "2006-01-02"

// PlannerDocument is the serialized form of a planner state. It is what gets
// exported, imported and written to the snapshot store.
type PlannerDocument struct {
	FinancialGoals        []GoalDocument                        `json:"financialGoals"`
	InvestmentAllocations map[string][]InvestmentChoiceDocument `json:"investmentAllocations"`
}

// GoalDocument is the serialized form of a goal.
type GoalDocument struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Kind         string  `json:"kind"`
	StartDate    string  `json:"startDate,omitempty"`
	TargetDate   string  `json:"targetDate,omitempty"`
	TargetAmount float64 `json:"targetAmount"`
}

// InvestmentChoiceDocument is the serialized form of an investment choice.
type InvestmentChoiceDocument struct {
	Name                           string  `json:"name"`
	AllocationPercentage           float64 `json:"allocationPercentage"`
	ExpectedAnnualReturnPercentage float64 `json:"expectedAnnualReturnPercentage"`
}

// NewPlannerDocument converts a planner state into its document form.
func NewPlannerDocument(state *entity.PlannerState) PlannerDocument {
	doc := PlannerDocument{
		FinancialGoals:        make([]GoalDocument, 0, len(state.Goals)),
		InvestmentAllocations: make(map[string][]InvestmentChoiceDocument, len(state.Allocations)),
	}

	for _, g := range state.Goals {
		gd := GoalDocument{
			ID:           g.ID.String(),
			Name:         g.Name,
			Kind:         string(g.Kind()),
			TargetAmount: g.TargetAmount,
		}
		if s, ok := g.Schedule.(entity.OneTimeSchedule); ok {
			gd.StartDate = s.StartDate.Format(DocumentDateLayout)
			gd.TargetDate = s.TargetDate.Format(DocumentDateLayout)
		}
		doc.FinancialGoals = append(doc.FinancialGoals, gd)
	}

	for horizon, choices := range state.Allocations {
		docs := make([]InvestmentChoiceDocument, 0, len(choices))
		for _, c := range choices {
			docs = append(docs, InvestmentChoiceDocument{
				Name:                           c.Name,
				AllocationPercentage:           c.AllocationPercentage,
				ExpectedAnnualReturnPercentage: c.ExpectedAnnualReturnPercentage,
			})
		}
		doc.InvestmentAllocations[string(horizon)] = docs
	}

	return doc
}

// ToState rebuilds a planner state owned by userID. Entries that cannot be
// reconstructed are left out and reported in the returned problems, so a
// partially broken document still yields a usable state.
func (d PlannerDocument) ToState(userID uuid.UUID) (*entity.PlannerState, []error) {
	state := entity.NewPlannerState()
	var problems []error

	seen := make(map[uuid.UUID]bool, len(d.FinancialGoals))
	for i, gd := range d.FinancialGoals {
		goal, err := gd.toEntity(userID)
		if err != nil {
			problems = append(problems, fmt.Errorf("financialGoals[%d]: %w", i, err))
			continue
		}
		if seen[goal.ID] {
			goal.ID = uuid.New()
		}
		seen[goal.ID] = true
		state.Goals = append(state.Goals, goal)
	}

	for key, docs := range d.InvestmentAllocations {
		horizon := entity.Horizon(strings.ToUpper(key))
		if !horizon.IsValid() {
			problems = append(problems, fmt.Errorf("investmentAllocations: unknown horizon %q", key))
			continue
		}

		choices := make([]entity.InvestmentChoice, 0, len(docs))
		for j, cd := range docs {
			if strings.TrimSpace(cd.Name) == "" {
				problems = append(problems, fmt.Errorf("investmentAllocations.%s[%d]: missing name", key, j))
				continue
			}
			if cd.AllocationPercentage < 0 || cd.AllocationPercentage > 100 {
				problems = append(problems, fmt.Errorf("investmentAllocations.%s[%d]: allocation percentage %v outside 0..100", key, j, cd.AllocationPercentage))
				continue
			}
			choices = append(choices, entity.InvestmentChoice{
				Name:                           cd.Name,
				AllocationPercentage:           cd.AllocationPercentage,
				ExpectedAnnualReturnPercentage: cd.ExpectedAnnualReturnPercentage,
			})
		}
		state.Allocations[horizon] = choices
	}

	return state, problems
}

func (gd GoalDocument) toEntity(userID uuid.UUID) (*entity.Goal, error) {
	if strings.TrimSpace(gd.Name) == "" {
		return nil, fmt.Errorf("missing name")
	}
	if gd.TargetAmount < 0 {
		return nil, fmt.Errorf("negative target amount %v", gd.TargetAmount)
	}

	var schedule entity.GoalSchedule
	switch entity.GoalKind(gd.Kind) {
	case entity.GoalKindOneTime:
		start, err := time.Parse(DocumentDateLayout, gd.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		target, err := time.Parse(DocumentDateLayout, gd.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("invalid targetDate: %w", err)
		}
		if target.Before(start) {
			return nil, fmt.Errorf("targetDate %s is before startDate %s", gd.TargetDate, gd.StartDate)
		}
		schedule = entity.OneTimeSchedule{StartDate: start, TargetDate: target}
	case entity.GoalKindRecurring:
		schedule = entity.RecurringSchedule{}
	default:
		return nil, fmt.Errorf("unknown kind %q", gd.Kind)
	}

	goal := entity.NewGoal(userID, gd.Name, gd.TargetAmount, schedule)
	if id, err := uuid.Parse(gd.ID); err == nil {
		goal.ID = id
	}
	return goal, nil
}
