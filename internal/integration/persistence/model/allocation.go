package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// AllocationModel represents one investment choice row in the allocations table.
type AllocationModel struct {
	ID                             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                         uuid.UUID `gorm:"type:uuid;not null;index:idx_allocations_user_horizon"`
	Horizon                        string    `gorm:"type:varchar(10);not null;index:idx_allocations_user_horizon"`
	Position                       int       `gorm:"not null"`
	Name                           string    `gorm:"type:varchar(255);not null"`
	AllocationPercentage           float64   `gorm:"type:decimal(7,4);not null"`
	ExpectedAnnualReturnPercentage float64   `gorm:"type:decimal(7,4);not null"`
	CreatedAt                      time.Time `gorm:"not null"`
}

// TableName returns the table name for the AllocationModel.
func (AllocationModel) TableName() string {
	return "allocations"
}

// ToEntity converts an AllocationModel to a domain InvestmentChoice.
func (m *AllocationModel) ToEntity() entity.InvestmentChoice {
	return entity.InvestmentChoice{
		Name:                           m.Name,
		AllocationPercentage:           m.AllocationPercentage,
		ExpectedAnnualReturnPercentage: m.ExpectedAnnualReturnPercentage,
	}
}

// AllocationsFromEntities creates the rows for one horizon's ordered choices.
func AllocationsFromEntities(userID uuid.UUID, horizon entity.Horizon, choices []entity.InvestmentChoice) []AllocationModel {
	now := time.Now().UTC()
	models := make([]AllocationModel, 0, len(choices))
	for i, c := range choices {
		models = append(models, AllocationModel{
			ID:                             uuid.New(),
			UserID:                         userID,
			Horizon:                        string(horizon),
			Position:                       i,
			Name:                           c.Name,
			AllocationPercentage:           c.AllocationPercentage,
			ExpectedAnnualReturnPercentage: c.ExpectedAnnualReturnPercentage,
			CreatedAt:                      now,
		})
	}
	return models
}
