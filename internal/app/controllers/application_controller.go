package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adjei/scholarhub/internal/app/models/dto"
	"github.com/adjei/scholarhub/internal/app/services"
	"github.com/adjei/scholarhub/internal/middleware"
)

// ApplicationController handles application intake and lifecycle endpoints.
type ApplicationController struct {
	applicationService *services.ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		logger:             logger,
	}
}

// Submit files a new application against an open scheme. The payload is
// multipart form data so the optional profile picture and supporting
// document can ride along with the fields.
// @Summary Apply for a scholarship
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param schemeId formData int true "Scheme ID"
// @Param dateOfBirth formData string true "Date of birth"
// @Param gender formData string true "Gender"
// @Param category formData string true "Category"
// @Param major formData string true "Major"
// @Param address formData string true "Address"
// @Param studentId formData string true "Student ID"
// @Param profilePic formData file false "Profile picture (jpg, jpeg, png, gif)"
// @Param document formData file false "Supporting document (pdf, doc, docx)"
// @Success 201 {object} dto.APIResponse{data=dto.SubmitApplicationResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing field or closed scheme"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Router /applications [post]
func (c *ApplicationController) Submit(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Both uploads are optional; a missing file is not an error.
	profilePic, _ := ctx.FormFile("profilePic")
	document, _ := ctx.FormFile("document")

	resp, err := c.applicationService.Submit(ctx.Request.Context(), userID, &req, profilePic, document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// List returns the authenticated user's applications
// @Summary List own applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application}
// @Router /applications [get]
func (c *ApplicationController) List(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	apps, err := c.applicationService.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: apps, Timestamp: time.Now()})
}

// Get returns one of the authenticated user's applications
// @Summary Get own application by ID
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Application}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [get]
func (c *ApplicationController) Get(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	app, err := c.applicationService.GetForUser(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: app, Timestamp: time.Now()})
}

// GetStatus returns the compact status view by application number
// @Summary Track an application by its number
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param number path string true "Application number"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationStatusResponse}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/track/{number} [get]
func (c *ApplicationController) GetStatus(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	number := ctx.Param("number")
	resp, err := c.applicationService.GetStatusByNumber(ctx.Request.Context(), number, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// AdminGet returns any application
// @Summary Get an application (admin)
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Application}
// @Router /admin/applications/{id} [get]
func (c *ApplicationController) AdminGet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	app, err := c.applicationService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: app, Timestamp: time.Now()})
}

// SetStatus moves an application through its lifecycle
// @Summary Set application status (admin)
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.SetStatusRequest true "Target status, remark and optional amount"
// @Success 200 {object} dto.APIResponse{data=models.Application}
// @Failure 400 {object} dto.ErrorResponse "Invalid transition or missing bank details"
// @Router /admin/applications/{id}/status [put]
func (c *ApplicationController) SetStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	app, err := c.applicationService.SetStatus(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: app, Timestamp: time.Now()})
}
