package vehicle

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"societyhub/internal/domain"
)

type Service struct {
	vehicles VehicleRepo
}

func NewService(vehicles VehicleRepo) *Service {
	return &Service{vehicles: vehicles}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateVehicleRequest) (*domain.Vehicle, error) {
	v := &domain.Vehicle{
		UserID:       userID,
		LicensePlate: req.LicensePlate,
		Model:        req.Model,
		Color:        req.Color,
		ParkingSpot:  req.ParkingSpot,
	}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Vehicle, error) {
	return s.vehicles.GetByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, id, userID int64, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	v, err := s.owned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.LicensePlate != "" {
		v.LicensePlate = req.LicensePlate
	}
	if req.Model != "" {
		v.Model = req.Model
	}
	if req.Color != "" {
		v.Color = req.Color
	}
	if req.ParkingSpot != "" {
		v.ParkingSpot = req.ParkingSpot
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, id)
}

func (s *Service) owned(ctx context.Context, id, userID int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	if v.UserID != userID {
		return nil, ErrNotOwner
	}
	return v, nil
}
