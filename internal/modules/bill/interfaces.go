package bill

import (
	"context"
	"time"

	"societyhub/internal/domain"
)

type BillRepo interface {
	Create(ctx context.Context, b *domain.Bill) error
	GetByID(ctx context.Context, id int64) (*domain.Bill, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.Bill, error)
	GetAll(ctx context.Context) ([]domain.Bill, error)
	Update(ctx context.Context, b *domain.Bill) error
	Delete(ctx context.Context, id int64) error
	MarkPaid(ctx context.Context, id int64, paidAt time.Time) (*domain.Bill, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type EventPublisher interface {
	SendToUser(userID int64, event string, payload any) bool
}
