package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
)

// IDocumentRepository defines the interface for document database operations
type IDocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Document, error)
	ListByApplication(ctx context.Context, applicationID, userID int64) ([]*models.Document, error)
	Delete(ctx context.Context, id int64) error
}

// DocumentRepository handles document database operations
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a new document row and returns its id
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO documents (application_id, user_id, document_type, document_name, file_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		doc.ApplicationID, doc.UserID, doc.DocumentType, doc.DocumentName, doc.FilePath).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating document: %w", err)
	}

	return id, nil
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	doc := &models.Document{}
	err := r.db.QueryRow(ctx, `
		SELECT id, application_id, user_id, document_type, document_name, file_path, uploaded_at
		FROM documents
		WHERE id = $1`,
		id).Scan(
		&doc.ID, &doc.ApplicationID, &doc.UserID, &doc.DocumentType,
		&doc.DocumentName, &doc.FilePath, &doc.UploadedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("error fetching document: %w", err)
	}

	return doc, nil
}

// ListByApplication returns the documents for an application, scoped to its owner
func (r *DocumentRepository) ListByApplication(ctx context.Context, applicationID, userID int64) ([]*models.Document, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, application_id, user_id, document_type, document_name, file_path, uploaded_at
		FROM documents
		WHERE application_id = $1 AND user_id = $2
		ORDER BY uploaded_at DESC`,
		applicationID, userID)

	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		if err := rows.Scan(
			&doc.ID, &doc.ApplicationID, &doc.UserID, &doc.DocumentType,
			&doc.DocumentName, &doc.FilePath, &doc.UploadedAt); err != nil {
			return nil, fmt.Errorf("error scanning document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}

// Delete removes a document row
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}
