package domain

import "time"

type NotificationType string

const (
	NotifBookingRequest NotificationType = "booking_request"
	NotifBookingStatus  NotificationType = "booking_status"
	NotifAnnouncement   NotificationType = "announcement"
	NotifBill           NotificationType = "bill"
	NotifComplaint      NotificationType = "complaint"
)

// Notification is an append-only, user-targeted message written as a side
// effect of booking, billing and announcement events. Rows are never mutated.
type Notification struct {
	ID              int64            `json:"id"`
	UserID          int64            `json:"user_id"`
	Message         string           `json:"message"`
	Type            NotificationType `json:"type"`
	BookingID       *int64           `json:"booking_id,omitempty"`
	BillID          *int64           `json:"bill_id,omitempty"`
	AnnouncementID  *int64           `json:"announcement_id,omitempty"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}
