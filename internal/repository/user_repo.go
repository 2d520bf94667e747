package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"societyhub/internal/domain"
)

// ErrUserNotFound means no user matched the lookup.
var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByPhoneAndRole(ctx context.Context, phone string, role domain.UserRole) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("phone_number = ? AND role = ?", phone, role).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("phone_number = ?", phone).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) GetIDsByRole(ctx context.Context, role domain.UserRole) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("role = ?", role).
		Pluck("id", &ids).Error
	return ids, err
}
