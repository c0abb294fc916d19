// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create appends a new goal to the end of the user's list.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&model.GoalModel{}).
			Unscoped().
			Select("COALESCE(MAX(position), -1) + 1").
			Where("user_id = ?", goal.UserID).
			Scan(&next).Error; err != nil {
			return err
		}

		goalModel := model.GoalFromEntity(goal)
		goalModel.Position = next
		return tx.Create(goalModel).Error
	})
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all goals for a given user in list order.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update updates an existing goal in the database. The list position is kept.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", goal.ID).
		Select("name", "kind", "target_amount", "start_date", "target_date", "updated_at").
		Updates(goalModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal from the database (soft delete).
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// replaceGoals hard-deletes the user's goals, soft-deleted ones included, and
// inserts the given list in order. Goals whose id belongs to another user are
// given a new id, which is written back to the entity.
func replaceGoals(tx *gorm.DB, userID uuid.UUID, goals []*entity.Goal) error {
	if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.GoalModel{}).Error; err != nil {
		return err
	}

	if len(goals) == 0 {
		return nil
	}

	// Rows left with these ids are owned by someone else
	ids := make([]uuid.UUID, 0, len(goals))
	for _, g := range goals {
		ids = append(ids, g.ID)
	}
	var taken []uuid.UUID
	if err := tx.Unscoped().Model(&model.GoalModel{}).Where("id IN ?", ids).Pluck("id", &taken).Error; err != nil {
		return err
	}
	if len(taken) > 0 {
		owned := make(map[uuid.UUID]bool, len(taken))
		for _, id := range taken {
			owned[id] = true
		}
		for _, g := range goals {
			if owned[g.ID] {
				g.ID = uuid.New()
			}
		}
	}

	models := make([]*model.GoalModel, 0, len(goals))
	for i, g := range goals {
		m := model.GoalFromEntity(g)
		m.UserID = userID
		m.Position = i
		models = append(models, m)
	}
	return tx.Create(&models).Error
}
