package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"societyhub/internal/domain"
	"societyhub/internal/repository"
)

type mockAmenityRepo struct{ mock.Mock }

func (m *mockAmenityRepo) GetAll(ctx context.Context) ([]domain.Amenity, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Amenity), args.Error(1)
}

func (m *mockAmenityRepo) GetByID(ctx context.Context, id int64) (*domain.Amenity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Amenity), args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking, notifs []domain.Notification) error {
	args := m.Called(ctx, b, notifs)
	if args.Error(0) == nil {
		b.ID = 1
	}
	return args.Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) GetDetailByID(ctx context.Context, id int64) (*repository.BookingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BookingDetail), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus, reason *string, notif domain.Notification) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, status, reason, notif)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) GetBookedSlots(ctx context.Context, amenityID int64, start, end time.Time) ([]repository.BookedSlot, error) {
	args := m.Called(ctx, amenityID, start, end)
	return args.Get(0).([]repository.BookedSlot), args.Error(1)
}

func (m *mockBookingRepo) GetPendingWithDetails(ctx context.Context) ([]repository.BookingDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.BookingDetail), args.Error(1)
}

func (m *mockBookingRepo) GetHistoryByUser(ctx context.Context, userID int64) ([]repository.BookingDetail, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]repository.BookingDetail), args.Error(1)
}

func (m *mockBookingRepo) GetAllHistory(ctx context.Context) ([]repository.BookingDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.BookingDetail), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetIDsByRole(ctx context.Context, role domain.UserRole) ([]int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]int64), args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Broadcast(event string, payload any) {
	m.Called(event, payload)
}

func (m *mockPublisher) SendToUser(userID int64, event string, payload any) bool {
	args := m.Called(userID, event, payload)
	return args.Bool(0)
}

func newTestService(amenities *mockAmenityRepo, bookings *mockBookingRepo, users *mockUserRepo, pub *mockPublisher) *Service {
	var p EventPublisher
	if pub != nil {
		p = pub
	}
	s := NewService(amenities, bookings, users, p)
	s.now = func() time.Time {
		return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	}
	return s
}

func tennisCourt() *domain.Amenity {
	return &domain.Amenity{ID: 2, Name: "Tennis Court", BookingDuration: 60}
}

func TestBookCreatesPendingAndNotifiesSecurity(t *testing.T) {
	amenities := new(mockAmenityRepo)
	bookings := new(mockBookingRepo)
	users := new(mockUserRepo)
	pub := new(mockPublisher)

	amenities.On("GetByID", mock.Anything, int64(2)).Return(tennisCourt(), nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Name: "Asha", Unit: "A-101"}, nil)
	users.On("GetIDsByRole", mock.Anything, domain.RoleSecurity).Return([]int64{3, 4}, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking"), mock.MatchedBy(func(notifs []domain.Notification) bool {
		return len(notifs) == 2 && notifs[0].Type == domain.NotifBookingRequest
	})).Return(nil)
	bookings.On("GetDetailByID", mock.Anything, int64(1)).Return(&repository.BookingDetail{
		ID: 1, AmenityID: 2, UserID: 7, Status: string(domain.BookingPending),
		StartTime: time.Date(2026, 9, 1, 4, 30, 0, 0, time.UTC), // 10:00 IST
		EndTime:   time.Date(2026, 9, 1, 5, 30, 0, 0, time.UTC),
		AmenityName: "Tennis Court", ResidentName: "Asha",
	}, nil)
	pub.On("SendToUser", mock.Anything, mock.Anything, mock.Anything).Return(true)

	svc := newTestService(amenities, bookings, users, pub)
	resp, err := svc.Book(context.Background(), 7, 2, CreateBookingRequest{Date: "2026-09-01", Slot: "10:00"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingPending), resp.Status)
	assert.Equal(t, "10:00", resp.Slot)
	pub.AssertNumberOfCalls(t, "SendToUser", 4) // newBooking + newNotification per guard
	bookings.AssertExpectations(t)
}

func TestBookRejectsOccupiedSlot(t *testing.T) {
	amenities := new(mockAmenityRepo)
	bookings := new(mockBookingRepo)
	users := new(mockUserRepo)

	amenities.On("GetByID", mock.Anything, int64(2)).Return(tennisCourt(), nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Name: "Asha"}, nil)
	users.On("GetIDsByRole", mock.Anything, domain.RoleSecurity).Return([]int64{3}, nil)
	bookings.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrOverlap)

	svc := newTestService(amenities, bookings, users, nil)
	_, err := svc.Book(context.Background(), 7, 2, CreateBookingRequest{Date: "2026-09-01", Slot: "10:00"})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestBookRejectsSlotOutsideWindow(t *testing.T) {
	amenities := new(mockAmenityRepo)
	amenities.On("GetByID", mock.Anything, int64(2)).Return(tennisCourt(), nil)

	svc := newTestService(amenities, new(mockBookingRepo), new(mockUserRepo), nil)

	_, err := svc.Book(context.Background(), 7, 2, CreateBookingRequest{Date: "2026-09-01", Slot: "06:00"})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	// 21:30 starts inside the window but spills past close.
	_, err = svc.Book(context.Background(), 7, 2, CreateBookingRequest{Date: "2026-09-01", Slot: "21:30"})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestBookRejectsPastSlot(t *testing.T) {
	amenities := new(mockAmenityRepo)
	amenities.On("GetByID", mock.Anything, int64(2)).Return(tennisCourt(), nil)

	svc := newTestService(amenities, new(mockBookingRepo), new(mockUserRepo), nil)
	_, err := svc.Book(context.Background(), 7, 2, CreateBookingRequest{Date: "2025-01-01", Slot: "10:00"})

	assert.ErrorIs(t, err, ErrPastSlot)
}

func TestBookUnknownAmenity(t *testing.T) {
	amenities := new(mockAmenityRepo)
	amenities.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(amenities, new(mockBookingRepo), new(mockUserRepo), nil)
	_, err := svc.Book(context.Background(), 7, 99, CreateBookingRequest{Date: "2026-09-01", Slot: "10:00"})

	assert.ErrorIs(t, err, ErrAmenityNotFound)
}

func TestUpdateStatusRejectRequiresReason(t *testing.T) {
	svc := newTestService(new(mockAmenityRepo), new(mockBookingRepo), new(mockUserRepo), nil)

	_, err := svc.UpdateStatus(context.Background(), 1, UpdateStatusRequest{Status: "rejected"})
	assert.ErrorIs(t, err, ErrReasonRequired)

	_, err = svc.UpdateStatus(context.Background(), 1, UpdateStatusRequest{Status: "rejected", RejectionReason: "   "})
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestUpdateStatusRejectStoresTrimmedReason(t *testing.T) {
	bookings := new(mockBookingRepo)

	pending := &domain.Booking{
		ID: 1, UserID: 7, AmenityID: 2, Status: domain.BookingPending,
		StartTime: time.Date(2026, 9, 1, 4, 30, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 5, 30, 0, 0, time.UTC),
	}
	rejected := *pending
	rejected.Status = domain.BookingRejected

	bookings.On("GetByID", mock.Anything, int64(1)).Return(pending, nil)
	bookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingRejected,
		mock.MatchedBy(func(reason *string) bool {
			return reason != nil && *reason == "court maintenance"
		}),
		mock.MatchedBy(func(n domain.Notification) bool {
			return n.RejectionReason != nil && *n.RejectionReason == "court maintenance"
		})).Return(&rejected, nil)
	bookings.On("GetDetailByID", mock.Anything, int64(1)).Return(&repository.BookingDetail{
		ID: 1, UserID: 7, AmenityID: 2, Status: string(domain.BookingRejected),
		StartTime: pending.StartTime, EndTime: pending.EndTime,
	}, nil)

	svc := newTestService(new(mockAmenityRepo), bookings, new(mockUserRepo), nil)
	resp, err := svc.UpdateStatus(context.Background(), 1, UpdateStatusRequest{
		Status: "rejected", RejectionReason: "  court maintenance  ",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingRejected), resp.Status)
	bookings.AssertExpectations(t)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	bookings := new(mockBookingRepo)
	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, Status: domain.BookingRejected,
	}, nil)

	svc := newTestService(new(mockAmenityRepo), bookings, new(mockUserRepo), nil)
	_, err := svc.UpdateStatus(context.Background(), 1, UpdateStatusRequest{Status: "approved"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusApproveConflict(t *testing.T) {
	bookings := new(mockBookingRepo)
	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, UserID: 7, AmenityID: 2, Status: domain.BookingPending,
		StartTime: time.Date(2026, 9, 1, 4, 30, 0, 0, time.UTC),
	}, nil)
	bookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingApproved, (*string)(nil), mock.Anything).
		Return(nil, repository.ErrOverlap)

	svc := newTestService(new(mockAmenityRepo), bookings, new(mockUserRepo), nil)
	_, err := svc.UpdateStatus(context.Background(), 1, UpdateStatusRequest{Status: "approved"})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdateStatusApproveNotifiesResident(t *testing.T) {
	bookings := new(mockBookingRepo)
	pub := new(mockPublisher)

	pending := &domain.Booking{
		ID: 1, UserID: 7, AmenityID: 2, Status: domain.BookingPending,
		StartTime: time.Date(2026, 9, 1, 4, 30, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 5, 30, 0, 0, time.UTC),
	}
	approved := *pending
	approved.Status = domain.BookingApproved

	bookings.On("GetByID", mock.Anything, int64(1)).Return(pending, nil)
	bookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingApproved, (*string)(nil),
		mock.MatchedBy(func(n domain.Notification) bool {
			return n.UserID == 7 && n.Type == domain.NotifBookingStatus
		})).Return(&approved, nil)
	bookings.On("GetDetailByID", mock.Anything, int64(1)).Return(&repository.BookingDetail{
		ID: 1, UserID: 7, AmenityID: 2, Status: string(domain.BookingApproved),
		StartTime: pending.StartTime, EndTime: pending.EndTime,
	}, nil)
	pub.On("SendToUser", int64(7), mock.Anything, mock.Anything).Return(true)

	svc := newTestService(new(mockAmenityRepo), bookings, new(mockUserRepo), pub)
	resp, err := svc.UpdateStatus(context.Background(), 1, UpdateStatusRequest{Status: "approved"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingApproved), resp.Status)
	pub.AssertNumberOfCalls(t, "SendToUser", 2)
}

func TestGetAvailabilityMarksPendingAsTaken(t *testing.T) {
	amenities := new(mockAmenityRepo)
	bookings := new(mockBookingRepo)

	amenities.On("GetByID", mock.Anything, int64(2)).Return(tennisCourt(), nil)
	bookings.On("GetBookedSlots", mock.Anything, int64(2), mock.Anything, mock.Anything).
		Return([]repository.BookedSlot{
			{
				StartTime: time.Date(2026, 9, 1, 4, 30, 0, 0, time.UTC), // 10:00 IST
				EndTime:   time.Date(2026, 9, 1, 5, 30, 0, 0, time.UTC),
			},
		}, nil)

	svc := newTestService(amenities, bookings, new(mockUserRepo), nil)
	avail, err := svc.GetAvailability(context.Background(), 2, "2026-09-01")

	require.NoError(t, err)
	assert.NotContains(t, avail.AvailableSlots, "10:00")
	assert.Contains(t, avail.AvailableSlots, "09:00")
	assert.Contains(t, avail.AvailableSlots, "11:00")
}

func TestGetAvailabilityDistinguishesBadDateFromRepoFailure(t *testing.T) {
	amenities := new(mockAmenityRepo)
	bookings := new(mockBookingRepo)

	amenities.On("GetByID", mock.Anything, int64(2)).Return(tennisCourt(), nil)

	svc := newTestService(amenities, bookings, new(mockUserRepo), nil)
	_, err := svc.GetAvailability(context.Background(), 2, "01-09-2026")
	assert.ErrorIs(t, err, ErrInvalidDate)

	dbErr := errors.New("db down")
	bookings.On("GetBookedSlots", mock.Anything, int64(2), mock.Anything, mock.Anything).
		Return([]repository.BookedSlot(nil), dbErr)
	_, err = svc.GetAvailability(context.Background(), 2, "2026-09-01")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidDate)
}
