package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/app/models/dto"
	"github.com/adjei/scholarhub/internal/app/repositories/mocks"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
)

type bankDetailServiceFixture struct {
	bankDetailRepo  *mocks.MockBankDetailRepository
	applicationRepo *mocks.MockApplicationRepository
	service         *BankDetailService
}

func newBankDetailServiceFixture() *bankDetailServiceFixture {
	f := &bankDetailServiceFixture{
		bankDetailRepo:  new(mocks.MockBankDetailRepository),
		applicationRepo: new(mocks.MockApplicationRepository),
	}
	f.service = NewBankDetailService(f.bankDetailRepo, f.applicationRepo, zerolog.Nop())
	return f
}

func bankDetailsRequest() *dto.SubmitBankDetailsRequest {
	return &dto.SubmitBankDetailsRequest{
		ApplicationNumber: "APP1700000000000000000123",
		AccountHolderName: "Ama Mensah",
		BankName:          "First National",
		BranchName:        "Campus Branch",
		SwiftCode:         "FNBXGHAC",
		AccountNumber:     "0123456789",
	}
}

func TestSubmitBankDetails(t *testing.T) {
	f := newBankDetailServiceFixture()

	f.applicationRepo.On("GetByNumberForUser", mock.Anything, "APP1700000000000000000123", int64(9)).
		Return(&models.Application{ID: 12, UserID: 9, ApplicationNumber: "APP1700000000000000000123"}, nil)
	f.bankDetailRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.BankDetail")).
		Run(func(args mock.Arguments) {
			detail := args.Get(1).(*models.BankDetail)
			assert.Equal(t, int64(12), detail.ApplicationID)
			assert.Equal(t, int64(9), detail.UserID)
		}).Return(int64(3), nil)

	resp, err := f.service.Submit(context.Background(), 9, bankDetailsRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, int64(12), resp.ApplicationID)
	assert.Equal(t, "APP1700000000000000000123", resp.ApplicationNumber)
}

func TestSubmitBankDetailsUnknownApplication(t *testing.T) {
	f := newBankDetailServiceFixture()

	f.applicationRepo.On("GetByNumberForUser", mock.Anything, mock.Anything, int64(9)).
		Return(nil, apperrors.ErrApplicationNotFound)

	_, err := f.service.Submit(context.Background(), 9, bankDetailsRequest())
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	f.bankDetailRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitBankDetailsDuplicate(t *testing.T) {
	f := newBankDetailServiceFixture()

	f.applicationRepo.On("GetByNumberForUser", mock.Anything, mock.Anything, int64(9)).
		Return(&models.Application{ID: 12, UserID: 9}, nil)
	f.bankDetailRepo.On("Create", mock.Anything, mock.Anything).
		Return(int64(0), apperrors.ErrBankDetailsExist)

	_, err := f.service.Submit(context.Background(), 9, bankDetailsRequest())
	assert.ErrorIs(t, err, apperrors.ErrBankDetailsExist)
}

func TestGetBankDetailsByApplicationNumber(t *testing.T) {
	f := newBankDetailServiceFixture()

	f.applicationRepo.On("GetByNumberForUser", mock.Anything, "APP42", int64(9)).
		Return(&models.Application{ID: 12, UserID: 9, ApplicationNumber: "APP42"}, nil)
	f.bankDetailRepo.On("GetByApplication", mock.Anything, int64(12), int64(9)).
		Return(&models.BankDetail{ID: 3, ApplicationID: 12, UserID: 9, BankName: "First National"}, nil)

	resp, err := f.service.GetByApplicationNumber(context.Background(), 9, "APP42")
	require.NoError(t, err)
	assert.Equal(t, "First National", resp.BankName)
	assert.Equal(t, "APP42", resp.ApplicationNumber)
}
