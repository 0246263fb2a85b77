package notification_test

import (
	"context"
	"testing"

	"go-attendance/internal/notification"
	notificationerrors "go-attendance/internal/notification/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	createFn         func(ctx context.Context, n *notification.Notification) error
	findByEmployeeFn func(ctx context.Context, employeeID string, offset, limit int) ([]notification.Notification, error)
	findByIDFn       func(ctx context.Context, id string) (*notification.Notification, error)
	countUnreadFn    func(ctx context.Context, employeeID string) (int64, error)
	markReadFn       func(ctx context.Context, id string) error
}

func (f *fakeNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if f.createFn != nil {
		return f.createFn(ctx, n)
	}
	return nil
}

func (f *fakeNotificationRepository) FindByEmployee(ctx context.Context, employeeID string, offset, limit int) ([]notification.Notification, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID, offset, limit)
	}
	return nil, nil
}

func (f *fakeNotificationRepository) FindByID(ctx context.Context, id string) (*notification.Notification, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepository) CountUnread(ctx context.Context, employeeID string) (int64, error) {
	if f.countUnreadFn != nil {
		return f.countUnreadFn(ctx, employeeID)
	}
	return 0, nil
}

func (f *fakeNotificationRepository) MarkRead(ctx context.Context, id string) error {
	if f.markReadFn != nil {
		return f.markReadFn(ctx, id)
	}
	return nil
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	notifID := uuid.New().String()
	recipientID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := notification.NewService(repo)

		repo.findByIDFn = func(ctx context.Context, id string) (*notification.Notification, error) {
			return &notification.Notification{
				ID:         uuid.MustParse(id),
				EmployeeID: uuid.MustParse(recipientID),
				Type:       notification.TypeLeave,
			}, nil
		}
		marked := false
		repo.markReadFn = func(ctx context.Context, id string) error {
			marked = true
			return nil
		}

		resp, err := svc.MarkRead(ctx, notifID, recipientID)

		assert.NoError(t, err)
		assert.True(t, marked)
		assert.True(t, resp.IsRead)
	})

	t.Run("success already read skips the write", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := notification.NewService(repo)

		repo.findByIDFn = func(ctx context.Context, id string) (*notification.Notification, error) {
			return &notification.Notification{
				ID:         uuid.MustParse(id),
				EmployeeID: uuid.MustParse(recipientID),
				IsRead:     true,
			}, nil
		}
		repo.markReadFn = func(ctx context.Context, id string) error {
			t.Fatal("mark read must not be called again")
			return nil
		}

		resp, err := svc.MarkRead(ctx, notifID, recipientID)

		assert.NoError(t, err)
		assert.True(t, resp.IsRead)
	})

	t.Run("negative not recipient", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := notification.NewService(repo)

		repo.findByIDFn = func(ctx context.Context, id string) (*notification.Notification, error) {
			return &notification.Notification{
				ID:         uuid.MustParse(id),
				EmployeeID: uuid.New(),
			}, nil
		}

		_, err := svc.MarkRead(ctx, notifID, recipientID)

		assert.ErrorIs(t, err, notificationerrors.ErrNotRecipient)
	})

	t.Run("negative not found", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := notification.NewService(repo)

		_, err := svc.MarkRead(ctx, notifID, recipientID)

		assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
	})
}

func TestNotificationService_UnreadCount(t *testing.T) {
	ctx := context.Background()

	repo := &fakeNotificationRepository{}
	svc := notification.NewService(repo)

	repo.countUnreadFn = func(ctx context.Context, employeeID string) (int64, error) {
		return 3, nil
	}

	count, err := svc.UnreadCount(ctx, uuid.New().String())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
