package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/app/models/dto"
	"github.com/adjei/scholarhub/internal/app/repositories"
)

// BankDetailService captures payout banking information, one record per
// application.
type BankDetailService struct {
	bankDetailRepo  repositories.IBankDetailRepository
	applicationRepo repositories.IApplicationRepository
	logger          zerolog.Logger
}

// NewBankDetailService creates a new BankDetailService
func NewBankDetailService(
	bankDetailRepo repositories.IBankDetailRepository,
	applicationRepo repositories.IApplicationRepository,
	logger zerolog.Logger,
) *BankDetailService {
	return &BankDetailService{
		bankDetailRepo:  bankDetailRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

// Submit stores bank details for an application the user owns, looked up by
// its application number. A second submission for the same application is a
// conflict.
func (s *BankDetailService) Submit(ctx context.Context, userID int64, req *dto.SubmitBankDetailsRequest) (*dto.BankDetailResponse, error) {
	app, err := s.applicationRepo.GetByNumberForUser(ctx, req.ApplicationNumber, userID)
	if err != nil {
		return nil, err
	}

	detail := &models.BankDetail{
		ApplicationID:     app.ID,
		ApplicationNumber: app.ApplicationNumber,
		UserID:            userID,
		AccountHolderName: req.AccountHolderName,
		BankName:          req.BankName,
		BranchName:        req.BranchName,
		SwiftCode:         req.SwiftCode,
		AccountNumber:     req.AccountNumber,
	}

	id, err := s.bankDetailRepo.Create(ctx, detail)
	if err != nil {
		return nil, err
	}
	detail.ID = id

	s.logger.Info().
		Int64("userID", userID).
		Int64("applicationID", app.ID).
		Msg("Bank details submitted")

	return bankDetailResponse(detail), nil
}

// GetByApplicationNumber returns the stored bank details for an application
// the user owns.
func (s *BankDetailService) GetByApplicationNumber(ctx context.Context, userID int64, number string) (*dto.BankDetailResponse, error) {
	app, err := s.applicationRepo.GetByNumberForUser(ctx, number, userID)
	if err != nil {
		return nil, err
	}

	detail, err := s.bankDetailRepo.GetByApplication(ctx, app.ID, userID)
	if err != nil {
		return nil, err
	}
	detail.ApplicationNumber = app.ApplicationNumber
	return bankDetailResponse(detail), nil
}

// GetForApplication returns bank details for any application. Admin view.
func (s *BankDetailService) GetForApplication(ctx context.Context, applicationID int64) (*dto.BankDetailResponse, error) {
	app, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	detail, err := s.bankDetailRepo.GetByApplication(ctx, app.ID, app.UserID)
	if err != nil {
		return nil, err
	}
	detail.ApplicationNumber = app.ApplicationNumber
	return bankDetailResponse(detail), nil
}

func bankDetailResponse(d *models.BankDetail) *dto.BankDetailResponse {
	return &dto.BankDetailResponse{
		ID:                d.ID,
		ApplicationID:     d.ApplicationID,
		ApplicationNumber: d.ApplicationNumber,
		AccountHolderName: d.AccountHolderName,
		BankName:          d.BankName,
		BranchName:        d.BranchName,
		SwiftCode:         d.SwiftCode,
		AccountNumber:     d.AccountNumber,
		CreatedAt:         d.CreatedAt,
	}
}
