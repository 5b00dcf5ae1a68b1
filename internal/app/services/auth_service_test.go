package services

import (
	"context"
	"testing"
	"time"

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

func newTestAuthService(userRepo *mocks.MockUserRepository) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "scholarhub-test",
	})
	return NewAuthService(userRepo, jwtService, zerolog.Nop())
}

func TestRegisterCreatesApplicant(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	svc := newTestAuthService(userRepo)

	userRepo.On("EmailExists", mock.Anything, "ama@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*models.User)
			assert.Equal(t, models.RoleApplicant, user.Role)
			assert.NotEqual(t, "hunter2secret", user.Password, "password must be stored hashed")
		}).Return(int64(7), nil)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName:     "Ama Mensah",
		Email:        "Ama@Example.com",
		MobileNumber: "0551234567",
		Password:     "hunter2secret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "ama@example.com", resp.User.Email)
	assert.Equal(t, "applicant", resp.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	svc := newTestAuthService(userRepo)

	userRepo.On("EmailExists", mock.Anything, "taken@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName:     "Someone",
		Email:        "taken@example.com",
		MobileNumber: "0551234567",
		Password:     "hunter2secret",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginSuccess(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	svc := newTestAuthService(userRepo)

	hashed, err := auth.HashPassword("hunter2secret")
	require.NoError(t, err)

	userRepo.On("GetByEmail", mock.Anything, "ama@example.com").Return(&models.User{
		ID:       7,
		FullName: "Ama Mensah",
		Email:    "ama@example.com",
		Password: hashed,
		Role:     models.RoleApplicant,
	}, nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ama@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(7), resp.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	svc := newTestAuthService(userRepo)

	hashed, err := auth.HashPassword("the-right-one")
	require.NoError(t, err)

	userRepo.On("GetByEmail", mock.Anything, "ama@example.com").Return(&models.User{
		ID:       7,
		Email:    "ama@example.com",
		Password: hashed,
	}, nil)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ama@example.com",
		Password: "the-wrong-one",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailMasked(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	svc := newTestAuthService(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, apperrors.ErrUserNotFound)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever123",
	})
	// Unknown accounts look the same as wrong passwords.
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, apperrors.ErrUserNotFound)
}
