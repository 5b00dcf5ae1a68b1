package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/app/repositories/mocks"
	"github.com/adjei/scholarhub/internal/metrics"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
	storagemocks "github.com/adjei/scholarhub/internal/pkg/filestorage/mocks"
)

type documentServiceFixture struct {
	documentRepo    *mocks.MockDocumentRepository
	applicationRepo *mocks.MockApplicationRepository
	storage         *storagemocks.MockFileStorage
	service         *DocumentService
}

func newDocumentServiceFixture(t *testing.T) *documentServiceFixture {
	t.Helper()

	m, err := metrics.New()
	require.NoError(t, err)

	f := &documentServiceFixture{
		documentRepo:    new(mocks.MockDocumentRepository),
		applicationRepo: new(mocks.MockApplicationRepository),
		storage:         new(storagemocks.MockFileStorage),
	}
	f.service = NewDocumentService(f.documentRepo, f.applicationRepo, f.storage, m, zerolog.Nop())
	return f
}

func TestUploadSuccess(t *testing.T) {
	f := newDocumentServiceFixture(t)

	fh := &multipart.FileHeader{Filename: "transcript.pdf"}
	f.applicationRepo.On("GetByIDForUser", mock.Anything, int64(4), int64(9)).
		Return(&models.Application{ID: 4, UserID: 9}, nil)
	f.storage.On("SaveFileWithPath", fh, "documents").Return("uploads/documents/x.pdf", nil)
	f.documentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Document")).Return(int64(21), nil)

	doc, err := f.service.Upload(context.Background(), 9, 4, models.DocumentTypeSupporting, fh)
	require.NoError(t, err)

	assert.Equal(t, int64(21), doc.ID)
	assert.Equal(t, "transcript.pdf", doc.DocumentName)
	assert.Equal(t, "uploads/documents/x.pdf", doc.FilePath)
}

func TestUploadRejectsExtensionBeforeStorage(t *testing.T) {
	f := newDocumentServiceFixture(t)

	tests := []struct {
		docType  models.DocumentType
		filename string
	}{
		{models.DocumentTypeSupporting, "payload.exe"},
		{models.DocumentTypeSupporting, "photo.jpg"},
		{models.DocumentTypeProfilePicture, "resume.pdf"},
		{models.DocumentTypeProfilePicture, "script.sh"},
	}

	for _, tt := range tests {
		fh := &multipart.FileHeader{Filename: tt.filename}
		_, err := f.service.Upload(context.Background(), 9, 4, tt.docType, fh)
		assert.ErrorIs(t, err, apperrors.ErrInvalidFileType, "%s as %s", tt.filename, tt.docType)
	}

	f.storage.AssertNotCalled(t, "SaveFileWithPath", mock.Anything, mock.Anything)
	f.documentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUploadUnknownDocumentType(t *testing.T) {
	f := newDocumentServiceFixture(t)

	fh := &multipart.FileHeader{Filename: "a.pdf"}
	_, err := f.service.Upload(context.Background(), 9, 4, "passport_scan", fh)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUploadForeignApplication(t *testing.T) {
	f := newDocumentServiceFixture(t)

	fh := &multipart.FileHeader{Filename: "a.pdf"}
	f.applicationRepo.On("GetByIDForUser", mock.Anything, int64(4), int64(9)).
		Return(nil, apperrors.ErrApplicationNotFound)

	_, err := f.service.Upload(context.Background(), 9, 4, models.DocumentTypeSupporting, fh)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	f.storage.AssertNotCalled(t, "SaveFileWithPath", mock.Anything, mock.Anything)
}

func TestUploadCleansUpOnCreateFailure(t *testing.T) {
	f := newDocumentServiceFixture(t)

	fh := &multipart.FileHeader{Filename: "a.pdf"}
	f.applicationRepo.On("GetByIDForUser", mock.Anything, int64(4), int64(9)).
		Return(&models.Application{ID: 4, UserID: 9}, nil)
	f.storage.On("SaveFileWithPath", fh, "documents").Return("uploads/documents/a.pdf", nil)
	f.documentRepo.On("Create", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)
	f.storage.On("DeleteFile", "uploads/documents/a.pdf").Return(nil)

	_, err := f.service.Upload(context.Background(), 9, 4, models.DocumentTypeSupporting, fh)
	require.Error(t, err)
	f.storage.AssertCalled(t, "DeleteFile", "uploads/documents/a.pdf")
}

func TestGetDocument(t *testing.T) {
	f := newDocumentServiceFixture(t)

	f.documentRepo.On("GetByID", mock.Anything, int64(21)).
		Return(&models.Document{ID: 21, UserID: 9, DocumentName: "transcript.pdf"}, nil)

	doc, err := f.service.Get(context.Background(), 21, 9)
	require.NoError(t, err)
	assert.Equal(t, "transcript.pdf", doc.DocumentName)
}

func TestGetDocumentForeignOwner(t *testing.T) {
	f := newDocumentServiceFixture(t)

	f.documentRepo.On("GetByID", mock.Anything, int64(21)).
		Return(&models.Document{ID: 21, UserID: 5}, nil)

	_, err := f.service.Get(context.Background(), 21, 9)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDeleteDocument(t *testing.T) {
	f := newDocumentServiceFixture(t)

	f.documentRepo.On("GetByID", mock.Anything, int64(21)).
		Return(&models.Document{ID: 21, UserID: 9, FilePath: "uploads/documents/x.pdf"}, nil)
	f.storage.On("DeleteFile", "uploads/documents/x.pdf").Return(nil)
	f.documentRepo.On("Delete", mock.Anything, int64(21)).Return(nil)

	err := f.service.Delete(context.Background(), 21, 9)
	require.NoError(t, err)
	f.documentRepo.AssertExpectations(t)
}

func TestDeleteDocumentForeignOwner(t *testing.T) {
	f := newDocumentServiceFixture(t)

	f.documentRepo.On("GetByID", mock.Anything, int64(21)).
		Return(&models.Document{ID: 21, UserID: 5}, nil)

	err := f.service.Delete(context.Background(), 21, 9)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	f.documentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteDocumentMissingFileStillDeletesRecord(t *testing.T) {
	f := newDocumentServiceFixture(t)

	f.documentRepo.On("GetByID", mock.Anything, int64(21)).
		Return(&models.Document{ID: 21, UserID: 9, FilePath: "uploads/documents/gone.pdf"}, nil)
	f.storage.On("DeleteFile", "uploads/documents/gone.pdf").Return(assert.AnError)
	f.documentRepo.On("Delete", mock.Anything, int64(21)).Return(nil)

	err := f.service.Delete(context.Background(), 21, 9)
	assert.NoError(t, err)
}
