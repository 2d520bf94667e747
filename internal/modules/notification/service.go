package notification

import (
	"context"

	"societyhub/internal/domain"
)

type NotificationRepo interface {
	GetByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
}

type Service struct {
	notifs NotificationRepo
}

func NewService(notifs NotificationRepo) *Service {
	return &Service{notifs: notifs}
}

// List returns the caller's notifications, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.notifs.GetByUser(ctx, userID)
}
