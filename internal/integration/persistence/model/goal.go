// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Position     int            `gorm:"not null;default:0"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Kind         string         `gorm:"type:varchar(20);not null"`
	TargetAmount float64        `gorm:"type:decimal(15,2);not null"`
	StartDate    *time.Time     `gorm:"type:date"`
	TargetDate   *time.Time     `gorm:"type:date"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
	DeletedAt    gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity. A one-time goal
// missing either date is read back as recurring.
func (m *GoalModel) ToEntity() *entity.Goal {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	var schedule entity.GoalSchedule = entity.RecurringSchedule{}
	if entity.GoalKind(m.Kind) == entity.GoalKindOneTime && m.StartDate != nil && m.TargetDate != nil {
		schedule = entity.OneTimeSchedule{
			StartDate:  entity.DateOf(*m.StartDate),
			TargetDate: entity.DateOf(*m.TargetDate),
		}
	}

	return &entity.Goal{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		Schedule:     schedule,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var deletedAt gorm.DeletedAt
	if goal.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *goal.DeletedAt, Valid: true}
	}

	m := &GoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Name:         goal.Name,
		Kind:         string(goal.Kind()),
		TargetAmount: goal.TargetAmount,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
		DeletedAt:    deletedAt,
	}

	if s, ok := goal.Schedule.(entity.OneTimeSchedule); ok {
		start, target := s.StartDate, s.TargetDate
		m.StartDate = &start
		m.TargetDate = &target
	}

	return m
}
