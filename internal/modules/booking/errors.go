package booking

import "errors"

var (
	ErrAmenityNotFound   = errors.New("amenity not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidDate       = errors.New("date must be formatted as YYYY-MM-DD")
	ErrSlotTaken         = errors.New("time slot already has an approved booking")
	ErrInvalidSlot       = errors.New("slot is outside the bookable window")
	ErrPastSlot          = errors.New("cannot book a slot in the past")
	ErrInvalidTransition = errors.New("booking status cannot change that way")
	ErrReasonRequired    = errors.New("rejection reason is required")
)
