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
	"github.com/adjei/scholarhub/internal/pkg/auth"
)

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	svc := NewUserService(userRepo, zerolog.Nop())

	hashed, err := auth.HashPassword("current-pass-1")
	require.NoError(t, err)
	userRepo.On("GetByID", mock.Anything, int64(9)).Return(&models.User{ID: 9, Password: hashed}, nil)

	err = svc.ChangePassword(context.Background(), 9, &dto.ChangePasswordRequest{
		CurrentPassword: "not-the-current",
		NewPassword:     "brand-new-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePasswordStoresHash(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	svc := NewUserService(userRepo, zerolog.Nop())

	hashed, err := auth.HashPassword("current-pass-1")
	require.NoError(t, err)
	userRepo.On("GetByID", mock.Anything, int64(9)).Return(&models.User{ID: 9, Password: hashed}, nil)
	userRepo.On("UpdatePassword", mock.Anything, int64(9), mock.MatchedBy(func(stored string) bool {
		return stored != "brand-new-pass" && auth.CheckPassword(stored, "brand-new-pass")
	})).Return(nil)

	err = svc.ChangePassword(context.Background(), 9, &dto.ChangePasswordRequest{
		CurrentPassword: "current-pass-1",
		NewPassword:     "brand-new-pass",
	})
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestGetProfile(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	svc := NewUserService(userRepo, zerolog.Nop())

	userRepo.On("GetByID", mock.Anything, int64(9)).Return(&models.User{
		ID:           9,
		FullName:     "Ama Mensah",
		Email:        "ama@example.com",
		MobileNumber: "0551234567",
		Role:         models.RoleApplicant,
	}, nil)

	profile, err := svc.GetProfile(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Ama Mensah", profile.FullName)
	assert.Equal(t, "applicant", profile.Role)
}
