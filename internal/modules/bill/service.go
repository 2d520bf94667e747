package bill

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"societyhub/internal/domain"
	"societyhub/internal/events"
	"societyhub/internal/repository"
)

type Service struct {
	bills  BillRepo
	notifs NotificationRepo
	events EventPublisher
	now    func() time.Time
}

func NewService(bills BillRepo, notifs NotificationRepo, eventPub EventPublisher) *Service {
	return &Service{bills: bills, notifs: notifs, events: eventPub, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreateBillRequest) (*BillResponse, error) {
	due, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("parse due date: %w", err)
	}

	b := &domain.Bill{
		UserID:      req.UserID,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     due,
		Status:      billStatusFor(due, s.now()),
	}
	if err := s.bills.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		n := &domain.Notification{
			UserID:  b.UserID,
			Message: fmt.Sprintf("New bill: %s, amount %.2f, due %s", b.Description, b.Amount, req.DueDate),
			Type:    domain.NotifBill,
			BillID:  &b.ID,
		}
		if err := s.notifs.Create(ctx, n); err != nil {
			log.Printf("bill notification failed: %v", err)
		} else if s.events != nil {
			s.events.SendToUser(b.UserID, events.EventNewNotification, n.Message)
		}
	}

	resp := toResponse(*b)
	return &resp, nil
}

// List returns the caller's own bills for residents and every bill for
// admins.
func (s *Service) List(ctx context.Context, userID int64, role domain.UserRole) ([]BillResponse, error) {
	var (
		bills []domain.Bill
		err   error
	)
	if role == domain.RoleAdmin {
		bills, err = s.bills.GetAll(ctx)
	} else {
		bills, err = s.bills.GetByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, toResponse(b))
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateBillRequest) (*BillResponse, error) {
	b, err := s.bills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	if req.Description != "" {
		b.Description = req.Description
	}
	if req.Amount > 0 {
		b.Amount = req.Amount
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("parse due date: %w", err)
		}
		b.DueDate = due
	}
	if req.Status != "" {
		b.Status = domain.BillStatus(req.Status)
	}

	if err := s.bills.Update(ctx, b); err != nil {
		return nil, err
	}
	resp := toResponse(*b)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bills.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBillNotFound
		}
		return err
	}
	return nil
}

// Pay marks the caller's bill as paid. Residents can only pay their own
// bills.
func (s *Service) Pay(ctx context.Context, id, userID int64) (*BillResponse, error) {
	b, err := s.bills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrNotOwner
	}

	paid, err := s.bills.MarkPaid(ctx, id, s.now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrBillAlreadyPaid) {
			return nil, ErrAlreadyPaid
		}
		return nil, err
	}
	resp := toResponse(*paid)
	return &resp, nil
}

// billStatusFor classifies an unpaid bill by its due date: pending when
// due within a week, upcoming otherwise.
func billStatusFor(due, now time.Time) domain.BillStatus {
	if due.Before(now.Add(7 * 24 * time.Hour)) {
		return domain.BillPending
	}
	return domain.BillUpcoming
}

func toResponse(b domain.Bill) BillResponse {
	return BillResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Description: b.Description,
		Amount:      b.Amount,
		DueDate:     b.DueDate,
		Status:      string(b.Status),
		PaidDate:    b.PaidDate,
	}
}
