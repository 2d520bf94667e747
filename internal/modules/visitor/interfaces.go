package visitor

import (
	"context"
	"time"

	"societyhub/internal/domain"
	"societyhub/internal/repository"
)

type VisitorRepo interface {
	Create(ctx context.Context, v *domain.Visitor) error
	GetByID(ctx context.Context, id int64) (*domain.Visitor, error)
	CheckIn(ctx context.Context, id int64, at time.Time) error
	Checkout(ctx context.Context, id int64, at time.Time) error
	GetCurrent(ctx context.Context) ([]repository.VisitorDetail, error)
	GetHistoryByUser(ctx context.Context, userID int64) ([]repository.VisitorDetail, error)
	GetAllHistory(ctx context.Context) ([]repository.VisitorDetail, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
