package auth

import (
	"context"

	"societyhub/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByPhoneAndRole(ctx context.Context, phone string, role domain.UserRole) (*domain.User, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role domain.UserRole) (string, error)
}
