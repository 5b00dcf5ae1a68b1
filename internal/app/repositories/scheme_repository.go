package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
)

// ISchemeRepository defines the interface for scheme database operations
type ISchemeRepository interface {
	Create(ctx context.Context, scheme *models.Scheme) (int64, error)
	Update(ctx context.Context, scheme *models.Scheme) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Scheme, error)
	ListOpen(ctx context.Context, now time.Time) ([]*models.Scheme, error)
	ListAll(ctx context.Context) ([]*models.Scheme, error)
}

// SchemeRepository handles scholarship scheme database operations
type SchemeRepository struct {
	db *pgxpool.Pool
}

// NewSchemeRepository creates a new SchemeRepository
func NewSchemeRepository(db *pgxpool.Pool) *SchemeRepository {
	return &SchemeRepository{db: db}
}

const schemeColumns = `id, scheme_name, scheme_type, grade, year, category, criteria, docs_required, amount, last_date, published_date`

func scanScheme(row pgx.Row) (*models.Scheme, error) {
	s := &models.Scheme{}
	err := row.Scan(
		&s.ID, &s.SchemeName, &s.SchemeType, &s.Grade, &s.Year, &s.Category,
		&s.Criteria, &s.DocsRequired, &s.Amount, &s.LastDate, &s.PublishedDate)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new scheme and returns its id
func (r *SchemeRepository) Create(ctx context.Context, scheme *models.Scheme) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO schemes (scheme_name, scheme_type, grade, year, category, criteria, docs_required, amount, last_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		scheme.SchemeName, scheme.SchemeType, scheme.Grade, scheme.Year, scheme.Category,
		scheme.Criteria, scheme.DocsRequired, scheme.Amount, scheme.LastDate).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating scheme: %w", err)
	}

	return id, nil
}

// Update replaces a scheme's editable fields
func (r *SchemeRepository) Update(ctx context.Context, scheme *models.Scheme) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE schemes
		SET scheme_name = $1, scheme_type = $2, grade = $3, year = $4, category = $5,
		    criteria = $6, docs_required = $7, amount = $8, last_date = $9
		WHERE id = $10`,
		scheme.SchemeName, scheme.SchemeType, scheme.Grade, scheme.Year, scheme.Category,
		scheme.Criteria, scheme.DocsRequired, scheme.Amount, scheme.LastDate, scheme.ID)

	if err != nil {
		return fmt.Errorf("error updating scheme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSchemeNotFound
	}

	return nil
}

// Delete removes a scheme
func (r *SchemeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM schemes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting scheme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSchemeNotFound
	}

	return nil
}

// GetByID retrieves a scheme by ID
func (r *SchemeRepository) GetByID(ctx context.Context, id int64) (*models.Scheme, error) {
	scheme, err := scanScheme(r.db.QueryRow(ctx, `
		SELECT `+schemeColumns+`
		FROM schemes
		WHERE id = $1`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchemeNotFound
		}
		return nil, fmt.Errorf("error fetching scheme: %w", err)
	}

	return scheme, nil
}

// ListOpen returns schemes whose last application date has not passed,
// newest published first.
func (r *SchemeRepository) ListOpen(ctx context.Context, now time.Time) ([]*models.Scheme, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+schemeColumns+`
		FROM schemes
		WHERE last_date >= $1::date
		ORDER BY published_date DESC`,
		now)

	if err != nil {
		return nil, fmt.Errorf("error listing schemes: %w", err)
	}
	defer rows.Close()

	return collectSchemes(rows)
}

// ListAll returns every scheme, newest published first
func (r *SchemeRepository) ListAll(ctx context.Context) ([]*models.Scheme, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+schemeColumns+`
		FROM schemes
		ORDER BY published_date DESC`)

	if err != nil {
		return nil, fmt.Errorf("error listing schemes: %w", err)
	}
	defer rows.Close()

	return collectSchemes(rows)
}

func collectSchemes(rows pgx.Rows) ([]*models.Scheme, error) {
	var schemes []*models.Scheme
	for rows.Next() {
		scheme, err := scanScheme(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning scheme: %w", err)
		}
		schemes = append(schemes, scheme)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schemes: %w", err)
	}
	return schemes, nil
}
