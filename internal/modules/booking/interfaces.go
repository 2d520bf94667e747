package booking

import (
	"context"
	"time"

	"societyhub/internal/domain"
	"societyhub/internal/repository"
)

type AmenityRepo interface {
	GetAll(ctx context.Context) ([]domain.Amenity, error)
	GetByID(ctx context.Context, id int64) (*domain.Amenity, error)
}

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking, notifs []domain.Notification) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetDetailByID(ctx context.Context, id int64) (*repository.BookingDetail, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus, reason *string, notif domain.Notification) (*domain.Booking, error)
	GetBookedSlots(ctx context.Context, amenityID int64, start, end time.Time) ([]repository.BookedSlot, error)
	GetPendingWithDetails(ctx context.Context) ([]repository.BookingDetail, error)
	GetHistoryByUser(ctx context.Context, userID int64) ([]repository.BookingDetail, error)
	GetAllHistory(ctx context.Context) ([]repository.BookingDetail, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetIDsByRole(ctx context.Context, role domain.UserRole) ([]int64, error)
}

// EventPublisher pushes real-time events to connected clients. Delivery
// is best effort; persistence is the notification table's job.
type EventPublisher interface {
	Broadcast(event string, payload any)
	SendToUser(userID int64, event string, payload any) bool
}
