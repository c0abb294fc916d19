// Package goal contains goal-related use cases.
package goal

import (
	"strings"
	"time"

	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/planning"
)

// GoalDetails is a goal together with the values derived from it.
type GoalDetails struct {
	Goal                    *entity.Goal
	TermYears               int
	TermMonths              int
	Horizon                 entity.Horizon
	InflationAdjustedTarget float64
	ElapsedMonths           int
}

func describe(goal *entity.Goal, planner *planning.Planner, today time.Time) *GoalDetails {
	return &GoalDetails{
		Goal:                    goal,
		TermYears:               goal.Term(),
		TermMonths:              goal.MonthTerm(),
		Horizon:                 goal.Horizon(),
		InflationAdjustedTarget: goal.InflationAdjustedTarget(planner.InflationRate()),
		ElapsedMonths:           goal.ElapsedMonths(today),
	}
}

// GoalFields holds the user-editable fields of a goal.
type GoalFields struct {
	Name         string
	TargetAmount float64
	Kind         entity.GoalKind
	StartDate    *time.Time // Required for ONE_TIME goals
	TargetDate   *time.Time // Required for ONE_TIME goals
}

// validate checks the fields and builds the matching schedule.
func (f GoalFields) validate() (string, entity.GoalSchedule, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return "", nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			"name is required",
			domainerror.ErrInvalidGoalName,
		)
	}

	if f.TargetAmount < 0 {
		return "", nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must not be negative",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	switch f.Kind {
	case entity.GoalKindRecurring:
		return name, entity.RecurringSchedule{}, nil
	case entity.GoalKindOneTime:
		if f.StartDate == nil || f.TargetDate == nil {
			return "", nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"start date and target date are required for one-time goals",
				domainerror.ErrInvalidGoalDates,
			)
		}
		start, target := entity.DateOf(*f.StartDate), entity.DateOf(*f.TargetDate)
		if target.Before(start) {
			return "", nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalDates,
				"target date must not be before start date",
				domainerror.ErrInvalidGoalDates,
			)
		}
		return name, entity.OneTimeSchedule{StartDate: start, TargetDate: target}, nil
	default:
		return "", nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalKind,
			"kind must be 'ONE_TIME' or 'RECURRING'",
			domainerror.ErrInvalidGoalKind,
		)
	}
}
