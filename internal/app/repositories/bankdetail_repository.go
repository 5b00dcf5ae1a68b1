package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
)

// IBankDetailRepository defines the interface for bank detail database operations
type IBankDetailRepository interface {
	Create(ctx context.Context, detail *models.BankDetail) (int64, error)
	GetByApplication(ctx context.Context, applicationID, userID int64) (*models.BankDetail, error)
	ExistsForApplication(ctx context.Context, applicationID int64) (bool, error)
}

// BankDetailRepository handles bank detail database operations
type BankDetailRepository struct {
	db *pgxpool.Pool
}

// NewBankDetailRepository creates a new BankDetailRepository
func NewBankDetailRepository(db *pgxpool.Pool) *BankDetailRepository {
	return &BankDetailRepository{db: db}
}

// Create inserts bank details. A unique constraint on (user_id, application_id)
// makes resubmission a conflict even under concurrent requests.
func (r *BankDetailRepository) Create(ctx context.Context, detail *models.BankDetail) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO bank_details
			(application_id, application_number, user_id, account_holder_name,
			 bank_name, branch_name, swift_code, account_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		detail.ApplicationID, detail.ApplicationNumber, detail.UserID, detail.AccountHolderName,
		detail.BankName, detail.BranchName, detail.SwiftCode, detail.AccountNumber).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.ErrBankDetailsExist
		}
		return 0, fmt.Errorf("error creating bank details: %w", err)
	}

	return id, nil
}

// GetByApplication retrieves bank details for an application, scoped to its owner
func (r *BankDetailRepository) GetByApplication(ctx context.Context, applicationID, userID int64) (*models.BankDetail, error) {
	detail := &models.BankDetail{}
	err := r.db.QueryRow(ctx, `
		SELECT id, application_id, application_number, user_id, account_holder_name,
		       bank_name, branch_name, swift_code, account_number, created_at
		FROM bank_details
		WHERE application_id = $1 AND user_id = $2`,
		applicationID, userID).Scan(
		&detail.ID, &detail.ApplicationID, &detail.ApplicationNumber, &detail.UserID,
		&detail.AccountHolderName, &detail.BankName, &detail.BranchName,
		&detail.SwiftCode, &detail.AccountNumber, &detail.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("bank details not found")
		}
		return nil, fmt.Errorf("error fetching bank details: %w", err)
	}

	return detail, nil
}

// ExistsForApplication checks whether bank details were captured for an application
func (r *BankDetailRepository) ExistsForApplication(ctx context.Context, applicationID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM bank_details WHERE application_id = $1)`,
		applicationID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking bank details: %w", err)
	}

	return exists, nil
}
