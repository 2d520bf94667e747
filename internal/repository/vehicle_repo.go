package repository

import (
	"context"

	"gorm.io/gorm"

	"societyhub/internal/domain"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Vehicle{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
