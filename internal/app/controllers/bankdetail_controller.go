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

// BankDetailController handles payout banking information endpoints.
type BankDetailController struct {
	bankDetailService *services.BankDetailService
	logger            zerolog.Logger
}

// NewBankDetailController creates a new BankDetailController
func NewBankDetailController(bankDetailService *services.BankDetailService, logger zerolog.Logger) *BankDetailController {
	return &BankDetailController{
		bankDetailService: bankDetailService,
		logger:            logger,
	}
}

// Submit stores bank details for an application
// @Summary Submit bank details for an application
// @Tags bank-details
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitBankDetailsRequest true "Bank details"
// @Success 201 {object} dto.APIResponse{data=dto.BankDetailResponse}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Bank details already submitted"
// @Router /bank-details [post]
func (c *BankDetailController) Submit(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.SubmitBankDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.bankDetailService.Submit(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// Get returns the stored bank details for an application by its number
// @Summary Get own bank details by application number
// @Tags bank-details
// @Produce json
// @Security BearerAuth
// @Param number path string true "Application number"
// @Success 200 {object} dto.APIResponse{data=dto.BankDetailResponse}
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /bank-details/{number} [get]
func (c *BankDetailController) Get(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	number := ctx.Param("number")
	resp, err := c.bankDetailService.GetByApplicationNumber(ctx.Request.Context(), userID, number)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// AdminGet returns the bank details for any application
// @Summary Get bank details for an application (admin)
// @Tags bank-details
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.BankDetailResponse}
// @Router /admin/applications/{id}/bank-details [get]
func (c *BankDetailController) AdminGet(ctx *gin.Context) {
	applicationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.bankDetailService.GetForApplication(ctx.Request.Context(), applicationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}
