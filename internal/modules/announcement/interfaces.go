package announcement

import (
	"context"

	"societyhub/internal/domain"
	"societyhub/internal/repository"
)

type AnnouncementRepo interface {
	Create(ctx context.Context, a *domain.Announcement, poll *domain.Poll, options []string, notifs []domain.Notification) error
	GetByID(ctx context.Context, id int64) (*domain.Announcement, error)
	Update(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context, forUser int64) ([]repository.AnnouncementDetail, error)
	GetPollByAnnouncement(ctx context.Context, announcementID int64) (*domain.Poll, error)
	GetPollResult(ctx context.Context, pollID, forUser int64) (*repository.PollResult, error)
	Vote(ctx context.Context, pollID, optionID, userID int64) error
}

type UserRepo interface {
	GetIDsByRole(ctx context.Context, role domain.UserRole) ([]int64, error)
}

type EventPublisher interface {
	Broadcast(event string, payload any)
	SendToUser(userID int64, event string, payload any) bool
}
