package services

import (
	"github.com/rs/zerolog"

	"github.com/adjei/scholarhub/internal/app/repositories"
	"github.com/adjei/scholarhub/internal/metrics"
	"github.com/adjei/scholarhub/internal/pkg/auth"
	"github.com/adjei/scholarhub/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	UserService         *UserService
	SchemeService       *SchemeService
	ApplicationService  *ApplicationService
	DocumentService     *DocumentService
	BankDetailService   *BankDetailService
	NotificationService *NotificationService
}

// NewServices wires every service with its repositories and shared
// dependencies.
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage filestorage.FileStorage,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, jwtService, logger),
		UserService: NewUserService(repos.UserRepository, logger),
		SchemeService: NewSchemeService(
			repos.SchemeRepository,
			repos.NotificationRepository,
			m,
			logger,
		),
		ApplicationService: NewApplicationService(
			repos.ApplicationRepository,
			repos.SchemeRepository,
			repos.BankDetailRepository,
			repos.DocumentRepository,
			repos.NotificationRepository,
			storage,
			m,
			logger,
		),
		DocumentService: NewDocumentService(
			repos.DocumentRepository,
			repos.ApplicationRepository,
			storage,
			m,
			logger,
		),
		BankDetailService: NewBankDetailService(
			repos.BankDetailRepository,
			repos.ApplicationRepository,
			logger,
		),
		NotificationService: NewNotificationService(repos.NotificationRepository, logger),
	}
}
