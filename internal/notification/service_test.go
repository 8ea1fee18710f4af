package notification_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hfaria/ventura/internal/notification"
)

func TestService_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := notification.NewMockRepository(ctrl)
	svc := notification.NewService(repo)

	userID := uuid.New()

	repo.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *notification.Notification) error {
			assert.Equal(t, userID, n.UserID)
			assert.Equal(t, notification.KindBusinessApproved, n.Kind)
			assert.Equal(t, "Your business was approved", n.Message)
			assert.False(t, n.Read)
			n.ID = uuid.New()
			return nil
		})

	err := svc.Notify(context.Background(), userID, "business_approved", "Your business was approved", map[string]any{"businessId": uuid.New().String()})
	assert.NoError(t, err)
}

func TestService_MarkRead(t *testing.T) {
	userID := uuid.New()
	notificationID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := notification.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().
			GetNotification(gomock.Any(), notificationID).
			Return(&notification.Notification{ID: notificationID, UserID: userID}, nil)
		repo.EXPECT().MarkRead(gomock.Any(), notificationID).Return(nil)

		err := svc.MarkRead(context.Background(), userID, notificationID)
		assert.NoError(t, err)
	})

	t.Run("SomeoneElsesNotification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := notification.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().
			GetNotification(gomock.Any(), notificationID).
			Return(&notification.Notification{ID: notificationID, UserID: uuid.New()}, nil)

		err := svc.MarkRead(context.Background(), userID, notificationID)
		assert.ErrorIs(t, err, notification.ErrNotFound)
	})

	t.Run("Missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := notification.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().
			GetNotification(gomock.Any(), notificationID).
			Return(nil, notification.ErrNotFound)

		err := svc.MarkRead(context.Background(), userID, notificationID)
		assert.ErrorIs(t, err, notification.ErrNotFound)
	})
}

func TestService_CountUnread(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := notification.NewMockRepository(ctrl)
	svc := notification.NewService(repo)

	userID := uuid.New()
	repo.EXPECT().CountUnread(gomock.Any(), userID).Return(4, nil)

	count, err := svc.CountUnread(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
