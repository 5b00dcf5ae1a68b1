package services

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/app/models/dto"
	"github.com/adjei/scholarhub/internal/app/repositories/mocks"
	"github.com/adjei/scholarhub/internal/metrics"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
	storagemocks "github.com/adjei/scholarhub/internal/pkg/filestorage/mocks"
)

type applicationServiceFixture struct {
	applicationRepo  *mocks.MockApplicationRepository
	schemeRepo       *mocks.MockSchemeRepository
	bankDetailRepo   *mocks.MockBankDetailRepository
	documentRepo     *mocks.MockDocumentRepository
	notificationRepo *mocks.MockNotificationRepository
	storage          *storagemocks.MockFileStorage
	service          *ApplicationService
}

func newApplicationServiceFixture(t *testing.T) *applicationServiceFixture {
	t.Helper()

	m, err := metrics.New()
	require.NoError(t, err)

	f := &applicationServiceFixture{
		applicationRepo:  new(mocks.MockApplicationRepository),
		schemeRepo:       new(mocks.MockSchemeRepository),
		bankDetailRepo:   new(mocks.MockBankDetailRepository),
		documentRepo:     new(mocks.MockDocumentRepository),
		notificationRepo: new(mocks.MockNotificationRepository),
		storage:          new(storagemocks.MockFileStorage),
	}
	f.service = NewApplicationService(
		f.applicationRepo,
		f.schemeRepo,
		f.bankDetailRepo,
		f.documentRepo,
		f.notificationRepo,
		f.storage,
		m,
		zerolog.Nop(),
	)
	return f
}

func validSubmitRequest() *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		SchemeID:    3,
		DateOfBirth: "2000-01-15",
		Gender:      "female",
		Category:    "general",
		Major:       "Computer Science",
		Address:     "12 College Road",
		StudentID:   "STU-1001",
	}
}

func openScheme() *models.Scheme {
	return &models.Scheme{
		ID:         3,
		SchemeName: "Merit Scholarship",
		LastDate:   time.Now().AddDate(0, 1, 0),
	}
}

func TestSubmitSuccess(t *testing.T) {
	f := newApplicationServiceFixture(t)

	f.schemeRepo.On("GetByID", mock.Anything, int64(3)).Return(openScheme(), nil)
	f.applicationRepo.On("ExistsForUserScheme", mock.Anything, int64(9), int64(3)).Return(false, nil)
	f.applicationRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Application")).Return(int64(77), nil)
	f.notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Notification")).Return(int64(1), nil)

	resp, err := f.service.Submit(context.Background(), 9, validSubmitRequest(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(77), resp.ApplicationID)
	assert.Equal(t, "pending", resp.Status)
	assert.True(t, strings.HasPrefix(resp.ApplicationNumber, "APP"))

	created := f.applicationRepo.Calls[1].Arguments.Get(1).(*models.Application)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "2000-01-15", created.DateOfBirth)
	assert.Equal(t, int64(9), created.UserID)
	assert.Equal(t, defaultProfilePicRef, created.ProfilePic)
	assert.Equal(t, defaultDocumentRef, created.DocumentRef)

	f.notificationRepo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*models.Notification"))
	f.storage.AssertNotCalled(t, "SaveFileWithPath", mock.Anything, mock.Anything)
}

func TestSubmitNormalizesUSDate(t *testing.T) {
	f := newApplicationServiceFixture(t)

	req := validSubmitRequest()
	req.DateOfBirth = "01/15/2000"

	f.schemeRepo.On("GetByID", mock.Anything, int64(3)).Return(openScheme(), nil)
	f.applicationRepo.On("ExistsForUserScheme", mock.Anything, int64(9), int64(3)).Return(false, nil)
	f.applicationRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Application")).
		Run(func(args mock.Arguments) {
			app := args.Get(1).(*models.Application)
			assert.Equal(t, "2000-01-15", app.DateOfBirth)
		}).Return(int64(1), nil)
	f.notificationRepo.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)

	_, err := f.service.Submit(context.Background(), 9, req, nil, nil)
	require.NoError(t, err)
}

func TestSubmitRejectsUnparseableDate(t *testing.T) {
	f := newApplicationServiceFixture(t)

	req := validSubmitRequest()
	req.DateOfBirth = "15th of January"

	_, err := f.service.Submit(context.Background(), 9, req, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var customErr *apperrors.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "dateOfBirth", customErr.Field)
	f.applicationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitMissingFieldNamesIt(t *testing.T) {
	f := newApplicationServiceFixture(t)

	req := validSubmitRequest()
	req.Gender = "  "

	_, err := f.service.Submit(context.Background(), 9, req, nil, nil)
	require.Error(t, err)

	var customErr *apperrors.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "gender", customErr.Field)
}

func TestSubmitClosedScheme(t *testing.T) {
	f := newApplicationServiceFixture(t)

	closed := openScheme()
	closed.LastDate = time.Now().AddDate(0, 0, -2)
	f.schemeRepo.On("GetByID", mock.Anything, int64(3)).Return(closed, nil)

	_, err := f.service.Submit(context.Background(), 9, validSubmitRequest(), nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrSchemeClosed)
	f.applicationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitDuplicate(t *testing.T) {
	f := newApplicationServiceFixture(t)

	f.schemeRepo.On("GetByID", mock.Anything, int64(3)).Return(openScheme(), nil)
	f.applicationRepo.On("ExistsForUserScheme", mock.Anything, int64(9), int64(3)).Return(true, nil)

	_, err := f.service.Submit(context.Background(), 9, validSubmitRequest(), nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
	f.applicationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitRejectsBadUploadBeforeStorage(t *testing.T) {
	f := newApplicationServiceFixture(t)

	f.schemeRepo.On("GetByID", mock.Anything, int64(3)).Return(openScheme(), nil)
	f.applicationRepo.On("ExistsForUserScheme", mock.Anything, int64(9), int64(3)).Return(false, nil)

	exe := &multipart.FileHeader{Filename: "malware.exe"}
	_, err := f.service.Submit(context.Background(), 9, validSubmitRequest(), nil, exe)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)

	f.storage.AssertNotCalled(t, "SaveFileWithPath", mock.Anything, mock.Anything)
	f.applicationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitStoresUploads(t *testing.T) {
	f := newApplicationServiceFixture(t)

	f.schemeRepo.On("GetByID", mock.Anything, int64(3)).Return(openScheme(), nil)
	f.applicationRepo.On("ExistsForUserScheme", mock.Anything, int64(9), int64(3)).Return(false, nil)

	pic := &multipart.FileHeader{Filename: "me.jpg"}
	doc := &multipart.FileHeader{Filename: "transcript.pdf"}
	f.storage.On("SaveFileWithPath", pic, "profile_pictures").Return("uploads/profile_pictures/a.jpg", nil)
	f.storage.On("SaveFileWithPath", doc, "documents").Return("uploads/documents/b.pdf", nil)

	f.applicationRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Application")).
		Run(func(args mock.Arguments) {
			app := args.Get(1).(*models.Application)
			assert.Equal(t, "uploads/profile_pictures/a.jpg", app.ProfilePic)
			assert.Equal(t, "uploads/documents/b.pdf", app.DocumentRef)
		}).Return(int64(5), nil)
	f.documentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Document")).Return(int64(1), nil)
	f.notificationRepo.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)

	_, err := f.service.Submit(context.Background(), 9, validSubmitRequest(), pic, doc)
	require.NoError(t, err)
	f.storage.AssertExpectations(t)

	var types []models.DocumentType
	for _, call := range f.documentRepo.Calls {
		d := call.Arguments.Get(1).(*models.Document)
		assert.Equal(t, int64(5), d.ApplicationID)
		assert.Equal(t, int64(9), d.UserID)
		types = append(types, d.DocumentType)
	}
	assert.ElementsMatch(t, []models.DocumentType{models.DocumentTypeProfilePicture, models.DocumentTypeSupporting}, types)
}

func pendingApplication() *models.Application {
	return &models.Application{
		ID:         12,
		UserID:     9,
		SchemeID:   3,
		SchemeName: "Merit Scholarship",
		Status:     models.StatusPending,
	}
}

func TestSetStatusApprovedNotifiesSuccess(t *testing.T) {
	f := newApplicationServiceFixture(t)

	f.applicationRepo.On("GetByID", mock.Anything, int64(12)).Return(pendingApplication(), nil)
	f.applicationRepo.On("UpdateStatus", mock.Anything, int64(12), models.StatusApproved, "looks good", (*float64)(nil)).Return(nil)
	f.notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Notification")).
		Run(func(args mock.Arguments) {
			n := args.Get(1).(*models.Notification)
			assert.Equal(t, int64(9), n.UserID)
			assert.Equal(t, "Application Status Update", n.Title)
			assert.Equal(t, "Your application for Merit Scholarship has been approved", n.Message)
			assert.Equal(t, models.NotificationCategorySuccess, n.Category)
			assert.Equal(t, models.ActionViewApplication, n.ActionType)
		}).Return(int64(1), nil)

	_, err := f.service.SetStatus(context.Background(), 12, &dto.SetStatusRequest{
		Status: "approved",
		Remark: "looks good",
	})
	require.NoError(t, err)
	f.notificationRepo.AssertExpectations(t)
}

func TestSetStatusRejectedNotifiesWarning(t *testing.T) {
	f := newApplicationServiceFixture(t)

	f.applicationRepo.On("GetByID", mock.Anything, int64(12)).Return(pendingApplication(), nil)
	f.applicationRepo.On("UpdateStatus", mock.Anything, int64(12), models.StatusRejected, "incomplete documents", (*float64)(nil)).Return(nil)
	f.notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Notification")).
		Run(func(args mock.Arguments) {
			n := args.Get(1).(*models.Notification)
			assert.Equal(t, models.NotificationCategoryWarning, n.Category)
		}).Return(int64(1), nil)

	_, err := f.service.SetStatus(context.Background(), 12, &dto.SetStatusRequest{
		Status: "rejected",
		Remark: "incomplete documents",
	})
	require.NoError(t, err)
}

func TestSetStatusInvalidTransition(t *testing.T) {
	f := newApplicationServiceFixture(t)

	rejected := pendingApplication()
	rejected.Status = models.StatusRejected
	f.applicationRepo.On("GetByID", mock.Anything, int64(12)).Return(rejected, nil)

	_, err := f.service.SetStatus(context.Background(), 12, &dto.SetStatusRequest{
		Status: "approved",
		Remark: "second thoughts",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	f.applicationRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatusUnknownStatus(t *testing.T) {
	f := newApplicationServiceFixture(t)

	_, err := f.service.SetStatus(context.Background(), 12, &dto.SetStatusRequest{
		Status: "archived",
		Remark: "n/a",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSetStatusDisburseRequiresBankDetails(t *testing.T) {
	f := newApplicationServiceFixture(t)

	approved := pendingApplication()
	approved.Status = models.StatusApproved
	amount := 5000.0

	f.applicationRepo.On("GetByID", mock.Anything, int64(12)).Return(approved, nil)
	f.bankDetailRepo.On("ExistsForApplication", mock.Anything, int64(12)).Return(false, nil)

	_, err := f.service.SetStatus(context.Background(), 12, &dto.SetStatusRequest{
		Status:          "disbursed",
		Remark:          "payout",
		DisbursedAmount: &amount,
	})
	assert.ErrorIs(t, err, apperrors.ErrBankDetailsRequired)
	f.applicationRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatusDisburseRequiresAmount(t *testing.T) {
	f := newApplicationServiceFixture(t)

	approved := pendingApplication()
	approved.Status = models.StatusApproved
	f.applicationRepo.On("GetByID", mock.Anything, int64(12)).Return(approved, nil)

	_, err := f.service.SetStatus(context.Background(), 12, &dto.SetStatusRequest{
		Status: "disbursed",
		Remark: "payout",
	})
	require.Error(t, err)

	var customErr *apperrors.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "disbursedAmount", customErr.Field)
}

func TestSetStatusDisburseSuccess(t *testing.T) {
	f := newApplicationServiceFixture(t)

	approved := pendingApplication()
	approved.Status = models.StatusApproved
	amount := 5000.0

	f.applicationRepo.On("GetByID", mock.Anything, int64(12)).Return(approved, nil)
	f.bankDetailRepo.On("ExistsForApplication", mock.Anything, int64(12)).Return(true, nil)
	f.applicationRepo.On("UpdateStatus", mock.Anything, int64(12), models.StatusDisbursed, "payout", &amount).Return(nil)
	f.notificationRepo.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)

	_, err := f.service.SetStatus(context.Background(), 12, &dto.SetStatusRequest{
		Status:          "disbursed",
		Remark:          "payout",
		DisbursedAmount: &amount,
	})
	require.NoError(t, err)
	f.applicationRepo.AssertExpectations(t)
}

func TestSetStatusSurvivesNotificationFailure(t *testing.T) {
	f := newApplicationServiceFixture(t)

	f.applicationRepo.On("GetByID", mock.Anything, int64(12)).Return(pendingApplication(), nil)
	f.applicationRepo.On("UpdateStatus", mock.Anything, int64(12), models.StatusApproved, "ok", (*float64)(nil)).Return(nil)
	f.notificationRepo.On("Create", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	_, err := f.service.SetStatus(context.Background(), 12, &dto.SetStatusRequest{
		Status: "approved",
		Remark: "ok",
	})
	assert.NoError(t, err)
}

func TestGenerateApplicationNumberUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		number := generateApplicationNumber()
		assert.True(t, strings.HasPrefix(number, "APP"))

		_, dup := seen[number]
		assert.False(t, dup, "duplicate application number %s", number)
		seen[number] = struct{}{}
	}
}
