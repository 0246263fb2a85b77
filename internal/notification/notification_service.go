package notification

import (
	"context"
	"errors"

	notificationerrors "go-attendance/internal/notification/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	ListByEmployee(ctx context.Context, employeeID string, offset, limit int) ([]NotificationResponse, error)
	UnreadCount(ctx context.Context, employeeID string) (int64, error)
	MarkRead(ctx context.Context, id, employeeID string) (NotificationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string, offset, limit int) ([]NotificationResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeID, offset, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]NotificationResponse, len(rows))
	for i, n := range rows {
		resp[i] = mapToResponse(n)
	}
	return resp, nil
}

func (s *service) UnreadCount(ctx context.Context, employeeID string) (int64, error) {
	return s.repo.CountUnread(ctx, employeeID)
}

// MarkRead flips the read flag. Only the recipient may do so; notifications
// are otherwise immutable.
func (s *service) MarkRead(ctx context.Context, id, employeeID string) (NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationResponse{}, notificationerrors.ErrNotificationNotFound
		}
		return NotificationResponse{}, err
	}
	if n.EmployeeID.String() != employeeID {
		s.logger.Warn("mark read by non-recipient",
			zap.String("notification_id", id),
			zap.String("employee_id", employeeID),
		)
		return NotificationResponse{}, notificationerrors.ErrNotRecipient
	}

	if !n.IsRead {
		if err := s.repo.MarkRead(ctx, id); err != nil {
			s.logger.Error("mark read persist failed", zap.String("notification_id", id), zap.Error(err))
			return NotificationResponse{}, err
		}
		n.IsRead = true
	}
	return mapToResponse(*n), nil
}
