package dto

import (
	"time"

	"github.com/goal-planner/backend/internal/application/usecase/goal"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// DateLayout is the calendar date format used in requests and responses.
const DateLayout = "2006-01-02"

// GoalRequest represents the request body for goal creation and full update.
type GoalRequest struct {
	Name         string   `json:"name"`
	TargetAmount *float64 `json:"target_amount" binding:"required"`
	Kind         string   `json:"kind" binding:"required"`
	StartDate    *string  `json:"start_date,omitempty"`  // YYYY-MM-DD, ONE_TIME only
	TargetDate   *string  `json:"target_date,omitempty"` // YYYY-MM-DD, ONE_TIME only
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                      string    `json:"id"`
	UserID                  string    `json:"user_id"`
	Name                    string    `json:"name"`
	Kind                    string    `json:"kind"`
	TargetAmount            float64   `json:"target_amount"`
	StartDate               *string   `json:"start_date,omitempty"`
	TargetDate              *string   `json:"target_date,omitempty"`
	TermYears               int       `json:"term_years"`
	TermMonths              int       `json:"term_months"`
	Horizon                 string    `json:"horizon"`
	InflationAdjustedTarget float64   `json:"inflation_adjusted_target"`
	ElapsedMonths           int       `json:"elapsed_months"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts goal details to a GoalResponse DTO.
func ToGoalResponse(d *goal.GoalDetails) GoalResponse {
	g := d.Goal
	response := GoalResponse{
		ID:                      g.ID.String(),
		UserID:                  g.UserID.String(),
		Name:                    g.Name,
		Kind:                    string(g.Kind()),
		TargetAmount:            g.TargetAmount,
		TermYears:               d.TermYears,
		TermMonths:              d.TermMonths,
		Horizon:                 string(d.Horizon),
		InflationAdjustedTarget: d.InflationAdjustedTarget,
		ElapsedMonths:           d.ElapsedMonths,
		CreatedAt:               g.CreatedAt,
		UpdatedAt:               g.UpdatedAt,
	}

	if s, ok := g.Schedule.(entity.OneTimeSchedule); ok {
		start := s.StartDate.Format(DateLayout)
		target := s.TargetDate.Format(DateLayout)
		response.StartDate = &start
		response.TargetDate = &target
	}

	return response
}

// ToGoalListResponse converts a list of goal details to GoalListResponse.
func ToGoalListResponse(details []*goal.GoalDetails) GoalListResponse {
	goals := make([]GoalResponse, len(details))
	for i, d := range details {
		goals[i] = ToGoalResponse(d)
	}
	return GoalListResponse{
		Goals: goals,
	}
}
