// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalKind identifies how a goal's investment window is determined.
type GoalKind string

const (
	GoalKindOneTime   GoalKind = "ONE_TIME"
	GoalKindRecurring GoalKind = "RECURRING"
)

// IsValid reports whether the kind is one of the known goal kinds.
func (k GoalKind) IsValid() bool {
	return k == GoalKindOneTime || k == GoalKindRecurring
}

// Horizon is the time-to-target classification of a goal.
type Horizon string

const (
	HorizonShort  Horizon = "SHORT"
	HorizonMedium Horizon = "MEDIUM"
	HorizonLong   Horizon = "LONG"
)

// Horizons lists every horizon in ascending order.
var Horizons = []Horizon{HorizonShort, HorizonMedium, HorizonLong}

// IsValid reports whether the horizon is one of the known buckets.
func (h Horizon) IsValid() bool {
	return h == HorizonShort || h == HorizonMedium || h == HorizonLong
}

const (
	// shortHorizonMaxMonths is the inclusive upper bound of the SHORT bucket.
	shortHorizonMaxMonths = 36
	// mediumHorizonMaxMonths is the inclusive upper bound of the MEDIUM bucket.
	mediumHorizonMaxMonths = 60

	recurringTermYears  = 1
	recurringTermMonths = 12
)

// GoalSchedule is the kind-specific part of a goal. It is implemented only by
// OneTimeSchedule and RecurringSchedule.
type GoalSchedule interface {
	Kind() GoalKind
	isGoalSchedule()
}

// OneTimeSchedule is a goal reached once, at TargetDate, with contributions from StartDate.
type OneTimeSchedule struct {
	StartDate  time.Time
	TargetDate time.Time
}

// Kind implements GoalSchedule.
func (OneTimeSchedule) Kind() GoalKind { return GoalKindOneTime }

func (OneTimeSchedule) isGoalSchedule() {}

// RecurringSchedule is a goal that repeats every year. It has no stored dates:
// its window always starts at the evaluation date.
type RecurringSchedule struct{}

// Kind implements GoalSchedule.
func (RecurringSchedule) Kind() GoalKind { return GoalKindRecurring }

func (RecurringSchedule) isGoalSchedule() {}

// Goal represents a financial goal the user is investing towards.
// TargetAmount is expressed in today's money.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount float64
	Schedule     GoalSchedule
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, name string, targetAmount float64, schedule GoalSchedule) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		Schedule:     schedule,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Kind returns the goal kind. A goal without a schedule is treated as recurring.
func (g *Goal) Kind() GoalKind {
	if g.Schedule == nil {
		return GoalKindRecurring
	}
	return g.Schedule.Kind()
}

// Term returns the goal term in whole years.
func (g *Goal) Term() int {
	switch s := g.Schedule.(type) {
	case OneTimeSchedule:
		return s.TargetDate.Year() - s.StartDate.Year()
	default:
		return recurringTermYears
	}
}

// MonthTerm returns the number of months between start and target, counting a
// trailing partial month as a full one.
func (g *Goal) MonthTerm() int {
	switch s := g.Schedule.(type) {
	case OneTimeSchedule:
		start, target := DateOf(s.StartDate), DateOf(s.TargetDate)
		months := monthDiff(start, target)
		if target.Day() > start.Day() {
			months++
		}
		return months
	default:
		return recurringTermMonths
	}
}

// Horizon classifies the goal by its month term. Bucket upper bounds are
// inclusive: up to 36 months is SHORT, up to 60 is MEDIUM, anything longer is
// LONG. The older whole-year thresholds are no longer used.
func (g *Goal) Horizon() Horizon {
	return HorizonForMonths(g.MonthTerm())
}

// HorizonForMonths classifies a month term.
func HorizonForMonths(months int) Horizon {
	switch {
	case months <= shortHorizonMaxMonths:
		return HorizonShort
	case months <= mediumHorizonMaxMonths:
		return HorizonMedium
	default:
		return HorizonLong
	}
}

// InflationAdjustedTarget compounds the target amount by inflationRate (0.05 = 5%)
// over the term and rounds to cents. Recurring goals are not inflated.
func (g *Goal) InflationAdjustedTarget(inflationRate float64) float64 {
	if g.Kind() == GoalKindRecurring {
		return g.TargetAmount
	}

	term := g.Term()
	if term <= 0 {
		return g.TargetAmount
	}

	adjusted := g.TargetAmount * math.Pow(1+inflationRate, float64(term))
	if math.IsNaN(adjusted) || math.IsInf(adjusted, 0) {
		return g.TargetAmount
	}
	return decimal.NewFromFloat(adjusted).Round(2).InexactFloat64()
}

// InvestmentStartDate returns the date contributions start from.
func (g *Goal) InvestmentStartDate(today time.Time) time.Time {
	switch s := g.Schedule.(type) {
	case OneTimeSchedule:
		return DateOf(s.StartDate)
	default:
		return DateOf(today)
	}
}

// TargetDate returns the date the goal amount is due. Recurring goals are due
// one term after today.
func (g *Goal) TargetDate(today time.Time) time.Time {
	switch s := g.Schedule.(type) {
	case OneTimeSchedule:
		return DateOf(s.TargetDate)
	default:
		return DateOf(today).AddDate(recurringTermYears, 0, 0)
	}
}

// ElapsedMonths returns the whole months between the investment start and today,
// clamped to [0, MonthTerm()]. Recurring goals always report zero.
func (g *Goal) ElapsedMonths(today time.Time) int {
	s, ok := g.Schedule.(OneTimeSchedule)
	if !ok {
		return 0
	}

	start, now := DateOf(s.StartDate), DateOf(today)
	if now.Before(start) {
		return 0
	}

	elapsed := monthDiff(start, now)
	if now.Day() < start.Day() {
		elapsed--
	}

	if elapsed < 0 {
		return 0
	}
	if total := g.MonthTerm(); elapsed > total {
		return max(total, 0)
	}
	return elapsed
}

// IsActiveOn reports whether referenceDate falls inside the investment window.
func (g *Goal) IsActiveOn(referenceDate, today time.Time) bool {
	ref := DateOf(referenceDate)
	if ref.Before(g.InvestmentStartDate(today)) {
		return false
	}
	return !ref.After(g.TargetDate(today))
}

// Replace overwrites every user-editable field, keeping identity and ownership.
func (g *Goal) Replace(name string, targetAmount float64, schedule GoalSchedule) {
	g.Name = name
	g.TargetAmount = targetAmount
	g.Schedule = schedule
	g.UpdatedAt = time.Now().UTC()
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthDiff(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
