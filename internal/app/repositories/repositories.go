package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	SchemeRepository       *SchemeRepository
	ApplicationRepository  *ApplicationRepository
	DocumentRepository     *DocumentRepository
	BankDetailRepository   *BankDetailRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		SchemeRepository:       NewSchemeRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		DocumentRepository:     NewDocumentRepository(db),
		BankDetailRepository:   NewBankDetailRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
