// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/goal-planner/backend/internal/integration/entrypoint/controller"
	"github.com/goal-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	goalController       *controller.GoalController
	allocationController *controller.AllocationController
	plannerController    *controller.PlannerController
	stateRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	allocationController *controller.AllocationController,
	plannerController *controller.PlannerController,
	stateRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		goalController:       goalController,
		allocationController: allocationController,
		plannerController:    plannerController,
		stateRateLimiter:     stateRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	if r.authMiddleware == nil {
		return
	}

	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PUT("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		if r.allocationController != nil {
			allocations := v1.Group("/allocations")
			{
				allocations.GET("", r.allocationController.Get)
				allocations.GET("/presets", r.allocationController.ListPresets)
				allocations.POST("/presets/:name/apply", r.allocationController.ApplyPreset)
				allocations.PUT("/:horizon", r.allocationController.SetHorizon)
			}
		}

		if r.plannerController != nil {
			planner := v1.Group("/planner")
			{
				planner.GET("/suggestions", r.plannerController.Suggestions)
				planner.GET("/yearly-returns", r.plannerController.YearlyReturns)
				planner.GET("/state", r.plannerController.ExportState)

				// Routes that overwrite the whole planner are rate limited
				limited := planner.Group("")
				if r.stateRateLimiter != nil {
					limited.Use(r.stateRateLimiter.Middleware())
				}
				limited.PUT("/state", r.plannerController.ImportState)
				limited.POST("/snapshot", r.plannerController.SaveSnapshot)
				limited.POST("/snapshot/restore", r.plannerController.RestoreSnapshot)
			}
		}
	}
}
