package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/app/models/dto"
	"github.com/adjei/scholarhub/internal/app/repositories"
	"github.com/adjei/scholarhub/internal/metrics"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
	"github.com/adjei/scholarhub/internal/pkg/helpers"
)

// SchemeService handles the scholarship catalog: the public listing and the
// admin publishing operations.
type SchemeService struct {
	schemeRepo       repositories.ISchemeRepository
	notificationRepo repositories.INotificationRepository
	metrics          *metrics.Metrics
	logger           zerolog.Logger
}

// NewSchemeService creates a new SchemeService
func NewSchemeService(
	schemeRepo repositories.ISchemeRepository,
	notificationRepo repositories.INotificationRepository,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *SchemeService {
	return &SchemeService{
		schemeRepo:       schemeRepo,
		notificationRepo: notificationRepo,
		metrics:          m,
		logger:           logger,
	}
}

// ListOpen returns schemes still accepting applications, newest first.
func (s *SchemeService) ListOpen(ctx context.Context) ([]*models.Scheme, error) {
	return s.schemeRepo.ListOpen(ctx, time.Now())
}

// ListAll returns every scheme regardless of deadline. Admin view.
func (s *SchemeService) ListAll(ctx context.Context) ([]*models.Scheme, error) {
	return s.schemeRepo.ListAll(ctx)
}

// GetByID returns one scheme.
func (s *SchemeService) GetByID(ctx context.Context, id int64) (*models.Scheme, error) {
	return s.schemeRepo.GetByID(ctx, id)
}

// Create publishes a new scheme and broadcasts an announcement to every
// applicant's inbox.
func (s *SchemeService) Create(ctx context.Context, req *dto.CreateSchemeRequest) (*models.Scheme, error) {
	lastDate, err := parseSchemeDate(req.LastDate)
	if err != nil {
		return nil, apperrors.NewValidationError("lastDate", err.Error())
	}

	scheme := &models.Scheme{
		SchemeName:    req.SchemeName,
		SchemeType:    req.SchemeType,
		Grade:         req.Grade,
		Year:          req.Year,
		Category:      req.Category,
		Criteria:      req.Criteria,
		DocsRequired:  req.DocsRequired,
		Amount:        req.Amount,
		LastDate:      lastDate,
		PublishedDate: time.Now(),
	}

	id, err := s.schemeRepo.Create(ctx, scheme)
	if err != nil {
		return nil, err
	}
	scheme.ID = id

	reached, err := s.notificationRepo.CreateBroadcast(ctx, &models.Notification{
		Title:      "New Scholarship Available",
		Message:    fmt.Sprintf("A new scholarship %q is now open for applications", scheme.SchemeName),
		Category:   models.NotificationCategoryInfo,
		ActionType: models.ActionViewScholarship,
		ActionID:   id,
	})
	if err != nil {
		// The scheme is published either way; a failed announcement is
		// logged, not surfaced.
		s.logger.Warn().Err(err).Int64("schemeID", id).Msg("Failed to broadcast scheme announcement")
	} else {
		s.metrics.NotificationsCreated(reached)
	}

	s.logger.Info().Int64("schemeID", id).Str("schemeName", scheme.SchemeName).Msg("Scheme published")
	return scheme, nil
}

// Update edits an existing scheme.
func (s *SchemeService) Update(ctx context.Context, id int64, req *dto.UpdateSchemeRequest) (*models.Scheme, error) {
	lastDate, err := parseSchemeDate(req.LastDate)
	if err != nil {
		return nil, apperrors.NewValidationError("lastDate", err.Error())
	}

	existing, err := s.schemeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.SchemeName = req.SchemeName
	existing.SchemeType = req.SchemeType
	existing.Grade = req.Grade
	existing.Year = req.Year
	existing.Category = req.Category
	existing.Criteria = req.Criteria
	existing.DocsRequired = req.DocsRequired
	existing.Amount = req.Amount
	existing.LastDate = lastDate

	if err := s.schemeRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a scheme. Applications referencing it are removed with it.
func (s *SchemeService) Delete(ctx context.Context, id int64) error {
	if err := s.schemeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("schemeID", id).Msg("Scheme deleted")
	return nil
}

func parseSchemeDate(value string) (time.Time, error) {
	iso, err := helpers.NormalizeDate(value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse("2006-01-02", iso)
}
