package services

import (
	"context"
	"fmt"
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/app/models/dto"
	"github.com/adjei/scholarhub/internal/app/repositories"
	"github.com/adjei/scholarhub/internal/metrics"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
	"github.com/adjei/scholarhub/internal/pkg/filestorage"
	"github.com/adjei/scholarhub/internal/pkg/helpers"
)

// imageExtensions and documentExtensions are the upload allow-lists.
var (
	imageExtensions    = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}
	documentExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
)

// References stored on the application row when the applicant submits
// without the optional uploads.
const (
	defaultProfilePicRef = "default_pic.jpg"
	defaultDocumentRef   = "default_doc.pdf"
)

// checkFileExtension rejects uploads whose filename extension is outside the
// given allow-list.
func checkFileExtension(fileHeader *multipart.FileHeader, allowed map[string]bool) error {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowed[ext] {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidFileType, ext)
	}
	return nil
}

// generateApplicationNumber builds the externally visible application
// identifier. The nanosecond timestamp plus a random suffix keeps numbers
// unique even under concurrent submissions.
func generateApplicationNumber() string {
	return fmt.Sprintf("APP%d%03d", time.Now().UnixNano(), rand.Intn(1000))
}

// ApplicationService handles application intake and the admin-driven
// status lifecycle.
type ApplicationService struct {
	applicationRepo  repositories.IApplicationRepository
	schemeRepo       repositories.ISchemeRepository
	bankDetailRepo   repositories.IBankDetailRepository
	documentRepo     repositories.IDocumentRepository
	notificationRepo repositories.INotificationRepository
	storage          filestorage.FileStorage
	metrics          *metrics.Metrics
	logger           zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repositories.IApplicationRepository,
	schemeRepo repositories.ISchemeRepository,
	bankDetailRepo repositories.IBankDetailRepository,
	documentRepo repositories.IDocumentRepository,
	notificationRepo repositories.INotificationRepository,
	storage filestorage.FileStorage,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo:  applicationRepo,
		schemeRepo:       schemeRepo,
		bankDetailRepo:   bankDetailRepo,
		documentRepo:     documentRepo,
		notificationRepo: notificationRepo,
		storage:          storage,
		metrics:          m,
		logger:           logger,
	}
}

// Submit validates and stores a new application against an open scheme.
// profilePic and document are optional uploads.
func (s *ApplicationService) Submit(
	ctx context.Context,
	userID int64,
	req *dto.SubmitApplicationRequest,
	profilePic, document *multipart.FileHeader,
) (*dto.SubmitApplicationResponse, error) {
	if err := validateSubmitRequest(req); err != nil {
		return nil, err
	}

	dateOfBirth, err := helpers.NormalizeDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("dateOfBirth", err.Error())
	}

	scheme, err := s.schemeRepo.GetByID(ctx, req.SchemeID)
	if err != nil {
		return nil, err
	}
	if !scheme.IsOpen(time.Now()) {
		return nil, apperrors.ErrSchemeClosed
	}

	exists, err := s.applicationRepo.ExistsForUserScheme(ctx, userID, req.SchemeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	// Extensions are checked before anything touches storage so a bad
	// upload leaves no file behind.
	if profilePic != nil {
		if err := checkFileExtension(profilePic, imageExtensions); err != nil {
			return nil, err
		}
	}
	if document != nil {
		if err := checkFileExtension(document, documentExtensions); err != nil {
			return nil, err
		}
	}

	profilePicRef := defaultProfilePicRef
	documentRef := defaultDocumentRef
	if profilePic != nil {
		profilePicRef, err = s.storage.SaveFileWithPath(profilePic, "profile_pictures")
		if err != nil {
			return nil, fmt.Errorf("failed to store profile picture: %w", err)
		}
	}
	if document != nil {
		documentRef, err = s.storage.SaveFileWithPath(document, "documents")
		if err != nil {
			if profilePic != nil {
				if delErr := s.storage.DeleteFile(profilePicRef); delErr != nil {
					s.logger.Warn().Err(delErr).Str("file", profilePicRef).Msg("Failed to clean up profile picture")
				}
			}
			return nil, fmt.Errorf("failed to store document: %w", err)
		}
	}

	app := &models.Application{
		UserID:            userID,
		SchemeID:          req.SchemeID,
		ApplicationNumber: generateApplicationNumber(),
		DateOfBirth:       dateOfBirth,
		Gender:            req.Gender,
		Category:          req.Category,
		Major:             req.Major,
		Address:           req.Address,
		StudentID:         req.StudentID,
		ProfilePic:        profilePicRef,
		DocumentRef:       documentRef,
		Status:            models.StatusPending,
	}

	id, err := s.applicationRepo.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	if profilePic != nil {
		s.recordSubmitDocument(ctx, id, userID, models.DocumentTypeProfilePicture, profilePic.Filename, profilePicRef)
	}
	if document != nil {
		s.recordSubmitDocument(ctx, id, userID, models.DocumentTypeSupporting, document.Filename, documentRef)
	}

	s.metrics.ApplicationSubmitted()
	s.notify(ctx, &models.Notification{
		UserID:     userID,
		Title:      "Application Submitted",
		Message:    fmt.Sprintf("Your application for %s has been received", scheme.SchemeName),
		Category:   models.NotificationCategoryInfo,
		ActionType: models.ActionViewApplication,
		ActionID:   id,
	})

	s.logger.Info().
		Int64("userID", userID).
		Int64("schemeID", req.SchemeID).
		Str("applicationNumber", app.ApplicationNumber).
		Msg("Application submitted")

	return &dto.SubmitApplicationResponse{
		ApplicationID:     id,
		ApplicationNumber: app.ApplicationNumber,
		Status:            string(models.StatusPending),
	}, nil
}

// ListByUser returns the user's applications, newest first.
func (s *ApplicationService) ListByUser(ctx context.Context, userID int64) ([]*models.Application, error) {
	return s.applicationRepo.ListByUser(ctx, userID)
}

// GetForUser returns one application owned by the user.
func (s *ApplicationService) GetForUser(ctx context.Context, id, userID int64) (*models.Application, error) {
	return s.applicationRepo.GetByIDForUser(ctx, id, userID)
}

// GetStatusByNumber returns the compact status view for an application the
// user owns, looked up by application number.
func (s *ApplicationService) GetStatusByNumber(ctx context.Context, number string, userID int64) (*dto.ApplicationStatusResponse, error) {
	app, err := s.applicationRepo.GetByNumberForUser(ctx, number, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ApplicationStatusResponse{
		ID:                app.ID,
		ApplicationNumber: app.ApplicationNumber,
		Status:            string(app.Status),
		Remark:            app.Remark,
		DisbursedAmount:   app.DisbursedAmount,
		ApplyDate:         app.ApplyDate,
		UpdationDate:      app.UpdationDate,
	}, nil
}

// Get returns one application without an ownership filter. Admin view.
func (s *ApplicationService) Get(ctx context.Context, id int64) (*models.Application, error) {
	return s.applicationRepo.GetByID(ctx, id)
}

// SetStatus moves an application through its lifecycle. Only
// pending->approved, pending->rejected and approved->disbursed are legal.
// Disbursement requires submitted bank details and an amount.
func (s *ApplicationService) SetStatus(ctx context.Context, id int64, req *dto.SetStatusRequest) (*models.Application, error) {
	target := models.ApplicationStatus(req.Status)
	if !models.ValidStatus(target) {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}

	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(app.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, app.Status, target)
	}

	if target == models.StatusDisbursed {
		if req.DisbursedAmount == nil {
			return nil, apperrors.NewValidationError("disbursedAmount", "disbursed amount is required")
		}
		hasBank, err := s.bankDetailRepo.ExistsForApplication(ctx, id)
		if err != nil {
			return nil, err
		}
		if !hasBank {
			return nil, apperrors.ErrBankDetailsRequired
		}
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, target, req.Remark, req.DisbursedAmount); err != nil {
		return nil, err
	}

	s.metrics.StatusTransition(string(target))

	category := models.NotificationCategoryWarning
	if target == models.StatusApproved {
		category = models.NotificationCategorySuccess
	}
	s.notify(ctx, &models.Notification{
		UserID:     app.UserID,
		Title:      "Application Status Update",
		Message:    fmt.Sprintf("Your application for %s has been %s", app.SchemeName, target),
		Category:   category,
		ActionType: models.ActionViewApplication,
		ActionID:   app.ID,
	})

	s.logger.Info().
		Int64("applicationID", id).
		Str("from", string(app.Status)).
		Str("to", string(target)).
		Msg("Application status changed")

	return s.applicationRepo.GetByID(ctx, id)
}

// notify appends an inbox entry. The triggering operation has already
// committed, so a failure here is logged and swallowed.
// recordSubmitDocument books an uploaded file against the new application.
// The file is already stored and the application committed, so a failed
// insert is logged rather than failing the submission.
func (s *ApplicationService) recordSubmitDocument(ctx context.Context, applicationID, userID int64, docType models.DocumentType, name, ref string) {
	_, err := s.documentRepo.Create(ctx, &models.Document{
		ApplicationID: applicationID,
		UserID:        userID,
		DocumentType:  docType,
		DocumentName:  name,
		FilePath:      ref,
	})
	if err != nil {
		s.logger.Warn().Err(err).Int64("applicationID", applicationID).Msg("Failed to record submitted document")
		return
	}
	s.metrics.DocumentUploaded()
}

func (s *ApplicationService) notify(ctx context.Context, n *models.Notification) {
	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Warn().Err(err).Int64("userID", n.UserID).Msg("Failed to create notification")
		return
	}
	s.metrics.NotificationCreated()
}

func validateSubmitRequest(req *dto.SubmitApplicationRequest) error {
	if req.SchemeID <= 0 {
		return apperrors.NewValidationError("schemeId", "scheme is required")
	}
	required := []struct {
		field, value string
	}{
		{"dateOfBirth", req.DateOfBirth},
		{"gender", req.Gender},
		{"category", req.Category},
		{"major", req.Major},
		{"address", req.Address},
		{"studentId", req.StudentID},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.NewValidationError(f.field, f.field+" is required")
		}
	}
	return nil
}
