package domain

import "time"

type Vehicle struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	LicensePlate string    `json:"license_plate"`
	Model        string    `json:"model"`
	Color        string    `json:"color"`
	ParkingSpot  string    `json:"parking_spot,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
