package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"societyhub/internal/domain"
	"societyhub/internal/events"
	"societyhub/internal/repository"
)

type Service struct {
	amenities AmenityRepo
	bookings  BookingRepo
	users     UserRepo
	events    EventPublisher
	now       func() time.Time
}

func NewService(amenities AmenityRepo, bookings BookingRepo, users UserRepo, eventPub EventPublisher) *Service {
	return &Service{
		amenities: amenities,
		bookings:  bookings,
		users:     users,
		events:    eventPub,
		now:       time.Now,
	}
}

func (s *Service) ListAmenities(ctx context.Context) ([]AmenityResponse, error) {
	amenities, err := s.amenities.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AmenityResponse, 0, len(amenities))
	for _, a := range amenities {
		out = append(out, AmenityResponse{
			ID:              a.ID,
			Name:            a.Name,
			Description:     a.Description,
			MaxCapacity:     a.MaxCapacity,
			BookingDuration: a.BookingDuration,
		})
	}
	return out, nil
}

// GetAvailability returns the free slot starts for one amenity and day.
// Pending bookings count as taken here even though only approved ones
// block creation: a slot under review should not be offered twice.
func (s *Service) GetAvailability(ctx context.Context, amenityID int64, dateStr string) (*AvailabilityResponse, error) {
	amenity, err := s.amenities.GetByID(ctx, amenityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, err
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, istZone)
	if err != nil {
		return nil, ErrInvalidDate
	}
	dayEnd := day.Add(24 * time.Hour)

	booked, err := s.bookings.GetBookedSlots(ctx, amenityID, day.UTC(), dayEnd.UTC())
	if err != nil {
		return nil, err
	}

	return &AvailabilityResponse{
		AmenityID:      amenityID,
		Date:           dateStr,
		BookedSlots:    booked,
		AvailableSlots: generateSlots(day, amenity.BookingDuration, booked),
	}, nil
}

// Book creates a pending request and notifies all security users. The
// slot only becomes exclusive once someone approves it.
func (s *Service) Book(ctx context.Context, userID, amenityID int64, req CreateBookingRequest) (*BookingResponse, error) {
	amenity, err := s.amenities.GetByID(ctx, amenityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, err
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Slot, istZone)
	if err != nil {
		return nil, fmt.Errorf("parse slot: %w", err)
	}
	end := start.Add(time.Duration(amenity.BookingDuration) * time.Minute)

	open := time.Date(start.Year(), start.Month(), start.Day(), windowOpenHour, 0, 0, 0, istZone)
	close := time.Date(start.Year(), start.Month(), start.Day(), windowCloseHour, 0, 0, 0, istZone)
	if start.Before(open) || end.After(close) {
		return nil, ErrInvalidSlot
	}
	if start.Before(s.now()) {
		return nil, ErrPastSlot
	}

	resident, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	securityIDs, err := s.users.GetIDsByRole(ctx, domain.RoleSecurity)
	if err != nil {
		return nil, err
	}
	msg := fmt.Sprintf("%s requested %s on %s at %s", resident.Name, amenity.Name, req.Date, req.Slot)
	notifs := make([]domain.Notification, 0, len(securityIDs))
	for _, id := range securityIDs {
		notifs = append(notifs, domain.Notification{
			UserID:  id,
			Message: msg,
			Type:    domain.NotifBookingRequest,
		})
	}

	b := &domain.Booking{
		AmenityID: amenityID,
		UserID:    userID,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
	}
	if err := s.bookings.Create(ctx, b, notifs); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	detail, err := s.bookings.GetDetailByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	resp := toBookingResponse(*detail)

	if s.events != nil {
		for _, id := range securityIDs {
			s.events.SendToUser(id, events.EventNewBooking, resp)
			s.events.SendToUser(id, events.EventNewNotification, msg)
		}
	}
	return &resp, nil
}

// UpdateStatus moves a pending booking to approved or rejected and
// notifies the resident. Approving re-checks the slot, so of two
// overlapping pending requests only the first approval wins.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req UpdateStatusRequest) (*BookingResponse, error) {
	target := domain.BookingStatus(req.Status)
	rejectionReason := strings.TrimSpace(req.RejectionReason)
	if target == domain.BookingRejected && rejectionReason == "" {
		return nil, ErrReasonRequired
	}

	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !domain.CanTransition(current.Status, target) {
		return nil, ErrInvalidTransition
	}

	var reason *string
	notif := domain.Notification{
		UserID: current.UserID,
		Type:   domain.NotifBookingStatus,
	}
	localStart := current.StartTime.In(istZone)
	when := localStart.Format("2006-01-02 at 15:04")
	if target == domain.BookingApproved {
		notif.Message = fmt.Sprintf("Your booking for %s was approved", when)
	} else {
		reason = &rejectionReason
		notif.Message = fmt.Sprintf("Your booking for %s was rejected: %s", when, rejectionReason)
		notif.RejectionReason = reason
	}

	if _, err := s.bookings.UpdateStatus(ctx, bookingID, target, reason, notif); err != nil {
		switch {
		case errors.Is(err, repository.ErrOverlap):
			return nil, ErrSlotTaken
		case errors.Is(err, repository.ErrNotPending):
			return nil, ErrInvalidTransition
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrBookingNotFound
		default:
			return nil, err
		}
	}

	detail, err := s.bookings.GetDetailByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	resp := toBookingResponse(*detail)

	if s.events != nil {
		s.events.SendToUser(current.UserID, events.EventBookingUpdated, resp)
		s.events.SendToUser(current.UserID, events.EventNewNotification, notif.Message)
	}
	return &resp, nil
}

func (s *Service) GetPending(ctx context.Context) ([]BookingResponse, error) {
	rows, err := s.bookings.GetPendingWithDetails(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (s *Service) GetHistory(ctx context.Context, userID int64) ([]BookingResponse, error) {
	rows, err := s.bookings.GetHistoryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (s *Service) GetAllHistory(ctx context.Context) ([]BookingResponse, error) {
	rows, err := s.bookings.GetAllHistory(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func toResponses(rows []repository.BookingDetail) []BookingResponse {
	out := make([]BookingResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBookingResponse(row))
	}
	return out
}
