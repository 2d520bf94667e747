package vehicle

import (
	"context"

	"societyhub/internal/domain"
)

type VehicleRepo interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
}
