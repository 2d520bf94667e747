package complaint

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
	complaints ComplaintRepo
	users      UserRepo
	notifs     NotificationRepo
	events     EventPublisher
	now        func() time.Time
}

func NewService(complaints ComplaintRepo, users UserRepo, notifs NotificationRepo, eventPub EventPublisher) *Service {
	return &Service{complaints: complaints, users: users, notifs: notifs, events: eventPub, now: time.Now}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateComplaintRequest) (*domain.Complaint, error) {
	reporter, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	c := &domain.Complaint{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    domain.Priority(req.Priority),
		Status:      domain.ComplaintOpen,
		Date:        s.now().UTC(),
		Unit:        reporter.Unit,
	}
	if err := s.complaints.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update lets the reporter amend an open complaint. Resolved
// complaints are frozen.
func (s *Service) Update(ctx context.Context, id, userID int64, req UpdateComplaintRequest) (*domain.Complaint, error) {
	c, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrNotOwner
	}
	if c.Status != domain.ComplaintOpen {
		return nil, ErrAlreadyResolved
	}

	if req.Title != "" {
		c.Title = req.Title
	}
	if req.Description != "" {
		c.Description = req.Description
	}
	if req.Priority != "" {
		c.Priority = domain.Priority(req.Priority)
	}

	if err := s.complaints.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns the caller's complaints for residents and everything for
// admins.
func (s *Service) List(ctx context.Context, userID int64, role domain.UserRole) ([]ComplaintResponse, error) {
	var (
		rows []repository.ComplaintDetail
		err  error
	)
	if role == domain.RoleAdmin {
		rows, err = s.complaints.GetAll(ctx)
	} else {
		rows, err = s.complaints.GetByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]ComplaintResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toResponse(row))
	}
	return out, nil
}

// Resolve closes a complaint and notifies the reporter.
func (s *Service) Resolve(ctx context.Context, id, resolvedBy int64, req ResolveComplaintRequest) (*domain.Complaint, error) {
	resolved, err := s.complaints.Resolve(ctx, id, resolvedBy, req.ResolutionDescription, s.now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrComplaintNotFound
		case errors.Is(err, repository.ErrComplaintResolved):
			return nil, ErrAlreadyResolved
		default:
			return nil, err
		}
	}

	if s.notifs != nil {
		n := &domain.Notification{
			UserID:  resolved.UserID,
			Message: fmt.Sprintf("Your complaint %q was resolved: %s", resolved.Title, req.ResolutionDescription),
			Type:    domain.NotifComplaint,
		}
		if err := s.notifs.Create(ctx, n); err != nil {
			log.Printf("complaint notification failed: %v", err)
		} else if s.events != nil {
			s.events.SendToUser(resolved.UserID, events.EventNewNotification, n.Message)
		}
	}
	return resolved, nil
}
