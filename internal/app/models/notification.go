package models

import "time"

// Notification categories
const (
	NotificationCategorySuccess = "success"
	NotificationCategoryWarning = "warning"
	NotificationCategoryInfo    = "info"
)

// Notification action types
const (
	ActionViewApplication = "view-application"
	ActionViewScholarship = "view-scholarship"
)

// Notification is one entry in a user's append-only inbox
type Notification struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Category   string    `json:"category"`
	ActionType string    `json:"actionType"`
	ActionID   int64     `json:"actionId"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}
