package booking

import (
	"time"

	"societyhub/internal/repository"
)

// istZone is the display zone for booking history timestamps. Storage
// stays UTC.
var istZone = time.FixedZone("IST", 5*3600+1800)

type CreateBookingRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Slot string `json:"slot" validate:"required,datetime=15:04"`
}

type UpdateStatusRequest struct {
	Status          string `json:"status" validate:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejection_reason" validate:"omitempty,max=500"`
}

type AmenityResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	MaxCapacity     int    `json:"max_capacity"`
	BookingDuration int    `json:"booking_duration"`
}

type AvailabilityResponse struct {
	AmenityID      int64                   `json:"amenity_id"`
	Date           string                  `json:"date"`
	BookedSlots    []repository.BookedSlot `json:"booked_slots"`
	AvailableSlots []string                `json:"available_slots"`
}

// BookingResponse is a booking presented with IST display times
// alongside the raw UTC instants.
type BookingResponse struct {
	ID              int64     `json:"id"`
	AmenityID       int64     `json:"amenity_id"`
	AmenityName     string    `json:"amenity_name"`
	UserID          int64     `json:"user_id"`
	ResidentName    string    `json:"resident_name,omitempty"`
	ResidentUnit    string    `json:"resident_unit,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Date            string    `json:"date"`
	Slot            string    `json:"slot"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func toBookingResponse(d repository.BookingDetail) BookingResponse {
	localStart := d.StartTime.In(istZone)
	return BookingResponse{
		ID:              d.ID,
		AmenityID:       d.AmenityID,
		AmenityName:     d.AmenityName,
		UserID:          d.UserID,
		ResidentName:    d.ResidentName,
		ResidentUnit:    d.ResidentUnit,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		Date:            localStart.Format("2006-01-02"),
		Slot:            localStart.Format("15:04"),
		Status:          d.Status,
		RejectionReason: d.RejectionReason,
		CreatedAt:       d.CreatedAt,
	}
}
