package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goal-planner/backend/internal/application/usecase/allocation"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
)

// AllocationController handles investment allocation endpoints.
type AllocationController struct {
	getUseCase         *allocation.GetAllocationsUseCase
	setHorizonUseCase  *allocation.SetHorizonAllocationUseCase
	listPresetsUseCase *allocation.ListPresetsUseCase
	applyPresetUseCase *allocation.ApplyPresetUseCase
}

// NewAllocationController creates a new allocation controller instance.
func NewAllocationController(
	getUseCase *allocation.GetAllocationsUseCase,
	setHorizonUseCase *allocation.SetHorizonAllocationUseCase,
	listPresetsUseCase *allocation.ListPresetsUseCase,
	applyPresetUseCase *allocation.ApplyPresetUseCase,
) *AllocationController {
	return &AllocationController{
		getUseCase:         getUseCase,
		setHorizonUseCase:  setHorizonUseCase,
		listPresetsUseCase: listPresetsUseCase,
		applyPresetUseCase: applyPresetUseCase,
	}
}

// Get handles GET /allocations requests.
func (c *AllocationController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), allocation.GetAllocationsInput{UserID: userID})
	if err != nil {
		c.handleAllocationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AllocationsResponse{
		Allocations: dto.ToAllocationsMap(output.Allocations),
	})
}

// SetHorizon handles PUT /allocations/:horizon requests.
func (c *AllocationController) SetHorizon(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.SetHorizonAllocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAllocationFields),
		})
		return
	}

	output, err := c.setHorizonUseCase.Execute(ctx.Request.Context(), allocation.SetHorizonAllocationInput{
		UserID:  userID,
		Horizon: ctx.Param("horizon"),
		Choices: dto.ToInvestmentChoices(req.Choices),
	})
	if err != nil {
		c.handleAllocationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.HorizonAllocationResponse{
		Horizon: string(output.Horizon),
		Choices: dto.ToInvestmentChoiceDTOs(output.Choices),
	})
}

// ListPresets handles GET /allocations/presets requests.
func (c *AllocationController) ListPresets(ctx *gin.Context) {
	output := c.listPresetsUseCase.Execute()
	ctx.JSON(http.StatusOK, dto.ToPresetListResponse(output.Presets))
}

// ApplyPreset handles POST /allocations/presets/:name/apply requests.
func (c *AllocationController) ApplyPreset(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.applyPresetUseCase.Execute(ctx.Request.Context(), allocation.ApplyPresetInput{
		UserID:     userID,
		PresetName: ctx.Param("name"),
	})
	if err != nil {
		c.handleAllocationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AllocationsResponse{
		Allocations: dto.ToAllocationsMap(output.Allocations),
	})
}

// handleAllocationError handles allocation errors and returns appropriate HTTP responses.
func (c *AllocationController) handleAllocationError(ctx *gin.Context, err error) {
	var allocErr *domainerror.AllocationError
	if errors.As(err, &allocErr) {
		statusCode := http.StatusBadRequest
		if allocErr.Code == domainerror.ErrCodePresetNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: allocErr.Message,
			Code:  string(allocErr.Code),
		})
		return
	}

	slog.Error("Allocation request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
