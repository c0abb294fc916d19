package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goal-planner/backend/internal/application/usecase/planner"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/valueobject"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
)

// PlannerController handles suggestion, projection and planner state endpoints.
type PlannerController struct {
	suggestionsUseCase   *planner.GetSuggestionsUseCase
	yearlyReturnsUseCase *planner.GetYearlyReturnsUseCase
	exportUseCase        *planner.ExportStateUseCase
	importUseCase        *planner.ImportStateUseCase
	saveSnapshotUseCase  *planner.SaveSnapshotUseCase
	restoreUseCase       *planner.RestoreSnapshotUseCase
}

// NewPlannerController creates a new planner controller instance.
func NewPlannerController(
	suggestionsUseCase *planner.GetSuggestionsUseCase,
	yearlyReturnsUseCase *planner.GetYearlyReturnsUseCase,
	exportUseCase *planner.ExportStateUseCase,
	importUseCase *planner.ImportStateUseCase,
	saveSnapshotUseCase *planner.SaveSnapshotUseCase,
	restoreUseCase *planner.RestoreSnapshotUseCase,
) *PlannerController {
	return &PlannerController{
		suggestionsUseCase:   suggestionsUseCase,
		yearlyReturnsUseCase: yearlyReturnsUseCase,
		exportUseCase:        exportUseCase,
		importUseCase:        importUseCase,
		saveSnapshotUseCase:  saveSnapshotUseCase,
		restoreUseCase:       restoreUseCase,
	}
}

// Suggestions handles GET /planner/suggestions requests.
func (c *PlannerController) Suggestions(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.suggestionsUseCase.Execute(ctx.Request.Context(), planner.GetSuggestionsInput{
		UserID:        userID,
		ReferenceDate: ctx.Query("reference_date"),
	})
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionsResponse(output.ReferenceDate, output.InflationRate, output.Results))
}

// YearlyReturns handles GET /planner/yearly-returns requests.
func (c *PlannerController) YearlyReturns(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.yearlyReturnsUseCase.Execute(ctx.Request.Context(), planner.GetYearlyReturnsInput{
		UserID:        userID,
		ReferenceDate: ctx.Query("reference_date"),
	})
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToYearlyReturnsResponse(output.ReferenceDate, output.YearlyReturns))
}

// ExportState handles GET /planner/state requests.
func (c *PlannerController) ExportState(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), planner.ExportStateInput{UserID: userID})
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Document)
}

// ImportState handles PUT /planner/state requests.
func (c *PlannerController) ImportState(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var doc valueobject.PlannerDocument
	if err := ctx.ShouldBindJSON(&doc); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid planner document",
			Code:    string(domainerror.ErrCodeInvalidPlannerDocument),
			Details: err.Error(),
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), planner.ImportStateInput{
		UserID:   userID,
		Document: doc,
	})
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Document)
}

// SaveSnapshot handles POST /planner/snapshot requests.
func (c *PlannerController) SaveSnapshot(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.saveSnapshotUseCase.Execute(ctx.Request.Context(), planner.SaveSnapshotInput{UserID: userID})
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SnapshotResponse{
		SavedAt:   output.SavedAt,
		GoalCount: output.GoalCount,
	})
}

// RestoreSnapshot handles POST /planner/snapshot/restore requests.
func (c *PlannerController) RestoreSnapshot(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), planner.RestoreSnapshotInput{UserID: userID})
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RestoreSnapshotResponse{
		Found: output.Found,
		State: output.Document,
	})
}

// handlePlannerError handles planner errors and returns appropriate HTTP responses.
func (c *PlannerController) handlePlannerError(ctx *gin.Context, err error) {
	var plannerErr *domainerror.PlannerError
	if errors.As(err, &plannerErr) {
		statusCode := http.StatusBadRequest
		if plannerErr.Code == domainerror.ErrCodeSnapshotUnavailable {
			statusCode = http.StatusServiceUnavailable
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: plannerErr.Message,
			Code:  string(plannerErr.Code),
		})
		return
	}

	slog.Error("Planner request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
