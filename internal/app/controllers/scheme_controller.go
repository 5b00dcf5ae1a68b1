package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adjei/scholarhub/internal/app/models/dto"
	"github.com/adjei/scholarhub/internal/app/services"
	"github.com/adjei/scholarhub/internal/middleware"
)

// SchemeController handles the scholarship catalog endpoints.
type SchemeController struct {
	schemeService *services.SchemeService
	logger        zerolog.Logger
}

// NewSchemeController creates a new SchemeController
func NewSchemeController(schemeService *services.SchemeService, logger zerolog.Logger) *SchemeController {
	return &SchemeController{
		schemeService: schemeService,
		logger:        logger,
	}
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid identifier").WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// ListOpen returns schemes still accepting applications
// @Summary List open scholarships
// @Tags schemes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Scheme}
// @Router /schemes [get]
func (c *SchemeController) ListOpen(ctx *gin.Context) {
	schemes, err := c.schemeService.ListOpen(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: schemes, Timestamp: time.Now()})
}

// Get returns one scheme
// @Summary Get a scholarship by ID
// @Tags schemes
// @Produce json
// @Param id path int true "Scheme ID"
// @Success 200 {object} dto.APIResponse{data=models.Scheme}
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Router /schemes/{id} [get]
func (c *SchemeController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	scheme, err := c.schemeService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: scheme, Timestamp: time.Now()})
}

// ListAll returns every scheme regardless of deadline
// @Summary List all scholarships (admin)
// @Tags schemes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Scheme}
// @Router /admin/schemes [get]
func (c *SchemeController) ListAll(ctx *gin.Context) {
	schemes, err := c.schemeService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: schemes, Timestamp: time.Now()})
}

// Create publishes a new scheme
// @Summary Publish a scholarship (admin)
// @Tags schemes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSchemeRequest true "Scheme fields"
// @Success 201 {object} dto.APIResponse{data=models.Scheme}
// @Router /admin/schemes [post]
func (c *SchemeController) Create(ctx *gin.Context) {
	var req dto.CreateSchemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	scheme, err := c.schemeService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: scheme, Timestamp: time.Now()})
}

// Update edits an existing scheme
// @Summary Update a scholarship (admin)
// @Tags schemes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Scheme ID"
// @Param request body dto.UpdateSchemeRequest true "Scheme fields"
// @Success 200 {object} dto.APIResponse{data=models.Scheme}
// @Router /admin/schemes/{id} [put]
func (c *SchemeController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSchemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	scheme, err := c.schemeService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: scheme, Timestamp: time.Now()})
}

// Delete removes a scheme
// @Summary Delete a scholarship (admin)
// @Tags schemes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Scheme ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /admin/schemes/{id} [delete]
func (c *SchemeController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.schemeService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Scheme deleted"},
		Timestamp: time.Now(),
	})
}
