package repository

import (
	"context"

	"gorm.io/gorm"

	"societyhub/internal/domain"
)

type AmenityRepository struct {
	db *gorm.DB
}

func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

func (r *AmenityRepository) GetAll(ctx context.Context) ([]domain.Amenity, error) {
	var rows []domain.Amenity
	err := r.db.WithContext(ctx).Order("name").Find(&rows).Error
	return rows, err
}

func (r *AmenityRepository) GetByID(ctx context.Context, id int64) (*domain.Amenity, error) {
	var a domain.Amenity
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
