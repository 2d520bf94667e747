package domain

import "time"

type Amenity struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	MaxCapacity int       `json:"max_capacity"`
	// Length of a single bookable slot, in minutes.
	BookingDuration int       `json:"booking_duration"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
)

// bookingTransitions is the full transition table. A booking is born
// pending; approved, rejected and completed are terminal for the
// status-update API (completed is reached only by the sweep job).
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:  {BookingApproved, BookingRejected},
	BookingApproved: {BookingCompleted},
}

func CanTransition(from, to BookingStatus) bool {
	for _, s := range bookingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              int64         `json:"id"`
	AmenityID       int64         `json:"amenity_id"`
	UserID          int64         `json:"user_id"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         time.Time     `json:"end_time"`
	Status          BookingStatus `json:"status"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (Booking) TableName() string { return "amenity_bookings" }
