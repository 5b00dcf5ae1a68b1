package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/app/repositories/mocks"
	"github.com/adjei/scholarhub/internal/pkg/apperrors"
)

func TestListNotificationsIncludesUnreadCount(t *testing.T) {
	repo := new(mocks.MockNotificationRepository)
	svc := NewNotificationService(repo, zerolog.Nop())

	repo.On("ListByUser", mock.Anything, int64(9)).Return([]*models.Notification{
		{ID: 2, Title: "Application Status Update", IsRead: false},
		{ID: 1, Title: "Application Submitted", IsRead: true},
	}, nil)
	repo.On("UnreadCount", mock.Anything, int64(9)).Return(1, nil)

	resp, err := svc.List(context.Background(), 9)
	require.NoError(t, err)

	assert.Len(t, resp.Notifications, 2)
	assert.Equal(t, 1, resp.UnreadCount)
	assert.Equal(t, int64(2), resp.Notifications[0].ID)
}

func TestListNotificationsEmptyInbox(t *testing.T) {
	repo := new(mocks.MockNotificationRepository)
	svc := NewNotificationService(repo, zerolog.Nop())

	repo.On("ListByUser", mock.Anything, int64(9)).Return([]*models.Notification{}, nil)
	repo.On("UnreadCount", mock.Anything, int64(9)).Return(0, nil)

	resp, err := svc.List(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, resp.Notifications)
	assert.Empty(t, resp.Notifications)
	assert.Zero(t, resp.UnreadCount)
}

func TestMarkReadDelegates(t *testing.T) {
	repo := new(mocks.MockNotificationRepository)
	svc := NewNotificationService(repo, zerolog.Nop())

	repo.On("MarkRead", mock.Anything, int64(2), int64(9)).Return(nil)
	assert.NoError(t, svc.MarkRead(context.Background(), 2, 9))
}

func TestMarkReadUnknownNotification(t *testing.T) {
	repo := new(mocks.MockNotificationRepository)
	svc := NewNotificationService(repo, zerolog.Nop())

	repo.On("MarkRead", mock.Anything, int64(2), int64(9)).Return(apperrors.ErrNotificationNotFound)
	assert.ErrorIs(t, svc.MarkRead(context.Background(), 2, 9), apperrors.ErrNotificationNotFound)
}
