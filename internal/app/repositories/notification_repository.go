package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
)

// INotificationRepository defines the interface for notification database operations
type INotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) (int64, error)
	CreateBroadcast(ctx context.Context, n *models.Notification) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, id, userID int64) error
}

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create appends a notification to a user's inbox and returns its id
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO notifications (user_id, title, message, category, action_type, action_id, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING id`,
		n.UserID, n.Title, n.Message, n.Category, n.ActionType, n.ActionID).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating notification: %w", err)
	}

	return id, nil
}

// CreateBroadcast appends the notification to every applicant's inbox and
// returns the number of inboxes reached.
func (r *NotificationRepository) CreateBroadcast(ctx context.Context, n *models.Notification) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO notifications (user_id, title, message, category, action_type, action_id, is_read)
		SELECT id, $1, $2, $3, $4, $5, FALSE
		FROM users
		WHERE role = $6`,
		n.Title, n.Message, n.Category, n.ActionType, n.ActionID, models.RoleApplicant)

	if err != nil {
		return 0, fmt.Errorf("error broadcasting notification: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListByUser returns the user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, message, category, action_type, action_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID)

	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Message, &n.Category,
			&n.ActionType, &n.ActionID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a user
func (r *NotificationRepository) UnreadCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`,
		userID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead flips the read flag for a notification owned by the user.
// Marking an already-read notification is a no-op, not an error.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM notifications WHERE id = $1 AND user_id = $2)`,
		id, userID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking notification: %w", err)
	}
	if !exists {
		return apperrors.ErrNotificationNotFound
	}

	_, err = r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return fmt.Errorf("error marking notification as read: %w", err)
	}

	return nil
}
