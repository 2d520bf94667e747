package vehicle

type CreateVehicleRequest struct {
	LicensePlate string `json:"license_plate" validate:"required,min=2,max=20"`
	Model        string `json:"model" validate:"required,max=60"`
	Color        string `json:"color" validate:"omitempty,max=30"`
	ParkingSpot  string `json:"parking_spot" validate:"omitempty,max=20"`
}

type UpdateVehicleRequest struct {
	LicensePlate string `json:"license_plate" validate:"omitempty,min=2,max=20"`
	Model        string `json:"model" validate:"omitempty,max=60"`
	Color        string `json:"color" validate:"omitempty,max=30"`
	ParkingSpot  string `json:"parking_spot" validate:"omitempty,max=20"`
}
