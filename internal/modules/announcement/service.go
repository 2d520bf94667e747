package announcement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"societyhub/internal/domain"
	"societyhub/internal/events"
	"societyhub/internal/repository"
)

type Service struct {
	announcements AnnouncementRepo
	users         UserRepo
	events        EventPublisher
}

func NewService(announcements AnnouncementRepo, users UserRepo, eventPub EventPublisher) *Service {
	return &Service{announcements: announcements, users: users, events: eventPub}
}

// Create publishes an announcement, optionally with a poll, and fans
// out a notification to every resident.
func (s *Service) Create(ctx context.Context, createdBy int64, req CreateAnnouncementRequest) (*repository.AnnouncementDetail, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	a := &domain.Announcement{
		Title:     req.Title,
		Content:   req.Content,
		Date:      date,
		Priority:  domain.Priority(req.Priority),
		CreatedBy: createdBy,
	}

	var (
		poll    *domain.Poll
		options []string
	)
	if req.Poll != nil {
		poll = &domain.Poll{Question: req.Poll.Question}
		options = req.Poll.Options
	}

	residentIDs, err := s.users.GetIDsByRole(ctx, domain.RoleResident)
	if err != nil {
		return nil, err
	}
	msg := fmt.Sprintf("New announcement: %s", req.Title)
	notifs := make([]domain.Notification, 0, len(residentIDs))
	for _, id := range residentIDs {
		notifs = append(notifs, domain.Notification{
			UserID:  id,
			Message: msg,
			Type:    domain.NotifAnnouncement,
		})
	}

	if err := s.announcements.Create(ctx, a, poll, options, notifs); err != nil {
		return nil, err
	}

	detail, err := s.detail(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Broadcast(events.EventAnnouncementAdded, detail)
		for _, id := range residentIDs {
			s.events.SendToUser(id, events.EventNewNotification, msg)
		}
	}
	return detail, nil
}

func (s *Service) List(ctx context.Context, forUser int64) ([]repository.AnnouncementDetail, error) {
	return s.announcements.GetAll(ctx, forUser)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateAnnouncementRequest) (*repository.AnnouncementDetail, error) {
	a, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		a.Title = req.Title
	}
	if req.Content != "" {
		a.Content = req.Content
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("parse date: %w", err)
		}
		a.Date = date
	}
	if req.Priority != "" {
		a.Priority = domain.Priority(req.Priority)
	}

	if err := s.announcements.Update(ctx, a); err != nil {
		return nil, err
	}

	detail, err := s.detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.Broadcast(events.EventAnnouncementUpdated, detail)
	}
	return detail, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.announcements.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		return err
	}
	if s.events != nil {
		s.events.Broadcast(events.EventAnnouncementDeleted, map[string]int64{"id": id})
	}
	return nil
}

// Vote records the caller's choice on the announcement's poll and
// broadcasts the fresh tallies. Voting again moves the existing vote.
func (s *Service) Vote(ctx context.Context, announcementID, userID int64, req VoteRequest) (*repository.PollResult, error) {
	poll, err := s.announcements.GetPollByAnnouncement(ctx, announcementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPoll
		}
		return nil, err
	}

	if err := s.announcements.Vote(ctx, poll.ID, req.OptionID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, repository.ErrOptionNotInPoll) {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}

	result, err := s.announcements.GetPollResult(ctx, poll.ID, userID)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		// Broadcast tallies without any single user's choice attached.
		public := *result
		public.UserVote = nil
		s.events.Broadcast(events.EventPollUpdated, public)
	}
	return result, nil
}

func (s *Service) detail(ctx context.Context, id int64) (*repository.AnnouncementDetail, error) {
	all, err := s.announcements.GetAll(ctx, 0)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrAnnouncementNotFound
}
