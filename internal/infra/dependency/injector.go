// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/goal-planner/backend/config"
	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/application/usecase/allocation"
	"github.com/goal-planner/backend/internal/application/usecase/goal"
	"github.com/goal-planner/backend/internal/application/usecase/planner"
	"github.com/goal-planner/backend/internal/domain/planning"
	"github.com/goal-planner/backend/internal/infra/server/router"
	"github.com/goal-planner/backend/internal/integration/adapters"
	"github.com/goal-planner/backend/internal/integration/entrypoint/controller"
	"github.com/goal-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/goal-planner/backend/internal/integration/persistence"
)

// Resources are the external connections the application is built on.
// Clock defaults to the system clock when nil.
type Resources struct {
	DB               *gorm.DB
	Redis            *redis.Client
	Clock            adapter.Clock
	DBHealthCheck    controller.HealthChecker
	RedisHealthCheck controller.HealthChecker
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	RateLimiter *middleware.RateLimiter
	Router      *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, res Resources) (*Injector, error) {
	clock := res.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	// Create repositories
	goalRepo := persistence.NewGoalRepository(res.DB)
	allocationRepo := persistence.NewAllocationRepository(res.DB)
	plannerStateRepo := persistence.NewPlannerStateRepository(res.DB)
	stateStore := persistence.NewPlannerStateStore(res.Redis, cfg.Redis.SnapshotTTL)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	presetCatalog, err := adapters.NewPresetCatalog(cfg.Planner.PresetsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocation presets: %w", err)
	}

	engine := planning.NewPlanner(cfg.Planner.InflationRate)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, engine, clock)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, engine, clock)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, engine, clock)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, engine, clock)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create allocation use cases
	getAllocationsUseCase := allocation.NewGetAllocationsUseCase(allocationRepo)
	setHorizonUseCase := allocation.NewSetHorizonAllocationUseCase(allocationRepo)
	listPresetsUseCase := allocation.NewListPresetsUseCase(presetCatalog)
	applyPresetUseCase := allocation.NewApplyPresetUseCase(allocationRepo, presetCatalog)

	// Create planner use cases
	suggestionsUseCase := planner.NewGetSuggestionsUseCase(goalRepo, allocationRepo, engine, clock)
	yearlyReturnsUseCase := planner.NewGetYearlyReturnsUseCase(goalRepo, allocationRepo, engine, clock)
	exportUseCase := planner.NewExportStateUseCase(goalRepo, allocationRepo)
	importUseCase := planner.NewImportStateUseCase(plannerStateRepo)
	saveSnapshotUseCase := planner.NewSaveSnapshotUseCase(goalRepo, allocationRepo, stateStore, clock)
	restoreSnapshotUseCase := planner.NewRestoreSnapshotUseCase(plannerStateRepo, stateStore)

	// Create controllers
	healthController := controller.NewHealthController(res.DBHealthCheck, res.RedisHealthCheck)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	allocationController := controller.NewAllocationController(
		getAllocationsUseCase,
		setHorizonUseCase,
		listPresetsUseCase,
		applyPresetUseCase,
	)

	plannerController := controller.NewPlannerController(
		suggestionsUseCase,
		yearlyReturnsUseCase,
		exportUseCase,
		importUseCase,
		saveSnapshotUseCase,
		restoreSnapshotUseCase,
	)

	// Create middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(healthController, goalController, allocationController, plannerController, rateLimiter, authMiddleware)

	return &Injector{
		Config:      cfg,
		DB:          res.DB,
		RateLimiter: rateLimiter,
		Router:      r,
	}, nil
}
