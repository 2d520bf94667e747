package complaint

import (
	"context"
	"time"

	"societyhub/internal/domain"
	"societyhub/internal/repository"
)

type ComplaintRepo interface {
	Create(ctx context.Context, c *domain.Complaint) error
	GetByID(ctx context.Context, id int64) (*domain.Complaint, error)
	GetByUser(ctx context.Context, userID int64) ([]repository.ComplaintDetail, error)
	GetAll(ctx context.Context) ([]repository.ComplaintDetail, error)
	Update(ctx context.Context, c *domain.Complaint) error
	Resolve(ctx context.Context, id, resolvedBy int64, resolution string, at time.Time) (*domain.Complaint, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type EventPublisher interface {
	SendToUser(userID int64, event string, payload any) bool
}
