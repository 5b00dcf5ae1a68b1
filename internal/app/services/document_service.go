package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/app/repositories"
	"github.com/adjei/scholarhub/internal/metrics"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
	"github.com/adjei/scholarhub/internal/pkg/filestorage"
)

// DocumentService handles uploads attached to an application.
type DocumentService struct {
	documentRepo    repositories.IDocumentRepository
	applicationRepo repositories.IApplicationRepository
	storage         filestorage.FileStorage
	metrics         *metrics.Metrics
	logger          zerolog.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	documentRepo repositories.IDocumentRepository,
	applicationRepo repositories.IApplicationRepository,
	storage filestorage.FileStorage,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo:    documentRepo,
		applicationRepo: applicationRepo,
		storage:         storage,
		metrics:         m,
		logger:          logger,
	}
}

// Upload stores a file for an application the user owns. The extension is
// checked against the allow-list for the document type before storage is
// touched.
func (s *DocumentService) Upload(
	ctx context.Context,
	userID, applicationID int64,
	docType models.DocumentType,
	fileHeader *multipart.FileHeader,
) (*models.Document, error) {
	var allowed map[string]bool
	var prefix string
	switch docType {
	case models.DocumentTypeProfilePicture:
		allowed, prefix = imageExtensions, "profile_pictures"
	case models.DocumentTypeSupporting:
		allowed, prefix = documentExtensions, "documents"
	default:
		return nil, apperrors.NewValidationError("documentType", "unknown document type")
	}

	if err := checkFileExtension(fileHeader, allowed); err != nil {
		return nil, err
	}

	// Ownership check doubles as an existence check.
	if _, err := s.applicationRepo.GetByIDForUser(ctx, applicationID, userID); err != nil {
		return nil, err
	}

	filePath, err := s.storage.SaveFileWithPath(fileHeader, prefix)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		ApplicationID: applicationID,
		UserID:        userID,
		DocumentType:  docType,
		DocumentName:  fileHeader.Filename,
		FilePath:      filePath,
	}

	id, err := s.documentRepo.Create(ctx, doc)
	if err != nil {
		if delErr := s.storage.DeleteFile(filePath); delErr != nil {
			s.logger.Warn().Err(delErr).Str("file", filePath).Msg("Failed to clean up orphaned upload")
		}
		return nil, err
	}
	doc.ID = id

	s.metrics.DocumentUploaded()
	s.logger.Info().
		Int64("applicationID", applicationID).
		Int64("documentID", id).
		Str("documentType", string(docType)).
		Msg("Document uploaded")

	return doc, nil
}

// ListByApplication returns the documents for an application the user owns.
func (s *DocumentService) ListByApplication(ctx context.Context, applicationID, userID int64) ([]*models.Document, error) {
	if _, err := s.applicationRepo.GetByIDForUser(ctx, applicationID, userID); err != nil {
		return nil, err
	}
	return s.documentRepo.ListByApplication(ctx, applicationID, userID)
}

// Get returns a single document the user owns.
func (s *DocumentService) Get(ctx context.Context, id, userID int64) (*models.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.UserID != userID {
		return nil, apperrors.ErrPermissionDenied
	}
	return doc, nil
}

// Delete removes a document the user owns, file first, then the record.
// A file already missing from storage does not block the delete.
func (s *DocumentService) Delete(ctx context.Context, id, userID int64) error {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc.UserID != userID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.storage.DeleteFile(doc.FilePath); err != nil {
		s.logger.Warn().Err(err).Str("file", doc.FilePath).Msg("Failed to delete stored file")
	}

	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("documentID", id).Msg("Document deleted")
	return nil
}
