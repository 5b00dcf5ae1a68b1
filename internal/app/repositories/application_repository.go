package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
)

// IApplicationRepository defines the interface for application database operations
type IApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (int64, error)
	ExistsForUserScheme(ctx context.Context, userID, schemeID int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*models.Application, error)
	GetByNumberForUser(ctx context.Context, number string, userID int64) (*models.Application, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus, remark string, disbursedAmount *float64) error
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application and returns its id. A unique constraint
// on (user_id, scheme_id) closes the race where two submissions pass the
// existence pre-check concurrently.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO applications
			(user_id, scheme_id, application_number, date_of_birth, gender,
			 category, major, address, student_id, profile_pic, document_ref, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		app.UserID, app.SchemeID, app.ApplicationNumber, app.DateOfBirth, app.Gender,
		app.Category, app.Major, app.Address, app.StudentID, app.ProfilePic,
		app.DocumentRef, app.Status).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.ErrAlreadyApplied
		}
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return id, nil
}

// ExistsForUserScheme checks whether the user already applied for the scheme
func (r *ApplicationRepository) ExistsForUserScheme(ctx context.Context, userID, schemeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND scheme_id = $2)`,
		userID, schemeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking application existence: %w", err)
	}

	return exists, nil
}

const applicationColumns = `
	a.id, a.user_id, a.scheme_id, a.application_number, a.date_of_birth,
	a.gender, a.category, a.major, a.address, a.student_id, a.profile_pic,
	a.document_ref, a.status, a.remark, a.disbursed_amount, a.apply_date,
	a.updation_date, s.scheme_name`

func scanApplication(row pgx.Row) (*models.Application, error) {
	app := &models.Application{}
	var dob time.Time
	err := row.Scan(
		&app.ID, &app.UserID, &app.SchemeID, &app.ApplicationNumber, &dob,
		&app.Gender, &app.Category, &app.Major, &app.Address, &app.StudentID,
		&app.ProfilePic, &app.DocumentRef, &app.Status, &app.Remark,
		&app.DisbursedAmount, &app.ApplyDate, &app.UpdationDate, &app.SchemeName)
	if err != nil {
		return nil, err
	}
	app.DateOfBirth = dob.Format("2006-01-02")
	return app, nil
}

// GetByID retrieves an application regardless of owner (administrative reads)
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		JOIN schemes s ON a.scheme_id = s.id
		WHERE a.id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error fetching application: %w", err)
	}

	return app, nil
}

// GetByIDForUser retrieves an application scoped to its owner
func (r *ApplicationRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*models.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		JOIN schemes s ON a.scheme_id = s.id
		WHERE a.id = $1 AND a.user_id = $2`, id, userID))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error fetching application: %w", err)
	}

	return app, nil
}

// GetByNumberForUser resolves the externally visible application number,
// scoped to its owner.
func (r *ApplicationRepository) GetByNumberForUser(ctx context.Context, number string, userID int64) (*models.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		JOIN schemes s ON a.scheme_id = s.id
		WHERE a.application_number = $1 AND a.user_id = $2`, number, userID))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error fetching application: %w", err)
	}

	return app, nil
}

// ListByUser returns the user's applications, newest first
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		JOIN schemes s ON a.scheme_id = s.id
		WHERE a.user_id = $1
		ORDER BY a.apply_date DESC`,
		userID)

	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return apps, nil
}

// UpdateStatus applies a lifecycle transition in a single atomic UPDATE
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus, remark string, disbursedAmount *float64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE applications
		SET status = $1, remark = $2, disbursed_amount = COALESCE($3, disbursed_amount), updation_date = NOW()
		WHERE id = $4`,
		status, remark, disbursedAmount, id)

	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}
