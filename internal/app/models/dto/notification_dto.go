package dto

import "time"

// NotificationResponse is the API view of an inbox entry
type NotificationResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Category   string    `json:"category"`
	ActionType string    `json:"actionType"`
	ActionID   int64     `json:"actionId"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NotificationListResponse carries the inbox plus its unread count
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}
