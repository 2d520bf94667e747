package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"societyhub/internal/domain"
)

// ErrOptionNotInPoll means the voted option belongs to a different poll.
var ErrOptionNotInPoll = errors.New("option does not belong to poll")

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// PollOptionResult is an option with its current tally.
type PollOptionResult struct {
	ID    int64  `json:"id"`
	Text  string `json:"text"`
	Votes int64  `json:"votes"`
}

// PollResult is a poll with per-option tallies and, when requested for
// a specific user, that user's current choice.
type PollResult struct {
	ID       int64              `json:"id"`
	Question string             `json:"question"`
	Options  []PollOptionResult `json:"options"`
	UserVote *int64             `json:"user_vote,omitempty"`
}

// AnnouncementDetail is an announcement with author name and, when one
// is attached, its poll.
type AnnouncementDetail struct {
	domain.Announcement
	AuthorName string      `json:"author_name"`
	Poll       *PollResult `json:"poll,omitempty"`
}

// Create inserts the announcement and, when a poll is attached, the
// poll and its options in one transaction.
func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement, poll *domain.Poll, options []string, notifs []domain.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		if poll != nil {
			poll.AnnouncementID = a.ID
			if err := tx.Create(poll).Error; err != nil {
				return err
			}
			for _, text := range options {
				opt := domain.PollOption{PollID: poll.ID, Text: text}
				if err := tx.Create(&opt).Error; err != nil {
					return err
				}
			}
		}
		for i := range notifs {
			notifs[i].AnnouncementID = &a.ID
			if err := tx.Create(&notifs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*domain.Announcement, error) {
	var a domain.Announcement
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete removes the announcement and any attached poll, options and
// votes in one transaction.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var poll domain.Poll
		err := tx.Where("announcement_id = ?", id).First(&poll).Error
		switch {
		case err == nil:
			if err := tx.Where("poll_id = ?", poll.ID).Delete(&domain.PollVote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("poll_id = ?", poll.ID).Delete(&domain.PollOption{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&poll).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no poll attached
		default:
			return err
		}

		res := tx.Delete(&domain.Announcement{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetAll lists announcements newest first, each with its poll results.
// forUser controls whose vote is reported back in UserVote.
func (r *AnnouncementRepository) GetAll(ctx context.Context, forUser int64) ([]AnnouncementDetail, error) {
	type annRow struct {
		domain.Announcement
		AuthorName string `gorm:"column:author_name"`
	}
	var anns []annRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT a.*, u.name AS author_name
FROM announcements a
JOIN users u ON u.id = a.created_by
ORDER BY a.date DESC, a.id DESC`).
		Scan(&anns).Error
	if err != nil {
		return nil, err
	}

	out := make([]AnnouncementDetail, 0, len(anns))
	for _, row := range anns {
		detail := AnnouncementDetail{Announcement: row.Announcement, AuthorName: row.AuthorName}
		poll, err := r.pollForAnnouncement(ctx, row.ID, forUser)
		if err != nil {
			return nil, err
		}
		detail.Poll = poll
		out = append(out, detail)
	}
	return out, nil
}

// GetPollByAnnouncement returns the poll attached to an announcement,
// or gorm.ErrRecordNotFound when it has none.
func (r *AnnouncementRepository) GetPollByAnnouncement(ctx context.Context, announcementID int64) (*domain.Poll, error) {
	var poll domain.Poll
	if err := r.db.WithContext(ctx).Where("announcement_id = ?", announcementID).First(&poll).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

// GetPollResult returns the tallies for a single poll.
func (r *AnnouncementRepository) GetPollResult(ctx context.Context, pollID, forUser int64) (*PollResult, error) {
	var poll domain.Poll
	if err := r.db.WithContext(ctx).First(&poll, pollID).Error; err != nil {
		return nil, err
	}
	return r.buildPollResult(ctx, &poll, forUser)
}

func (r *AnnouncementRepository) pollForAnnouncement(ctx context.Context, announcementID, forUser int64) (*PollResult, error) {
	var poll domain.Poll
	err := r.db.WithContext(ctx).Where("announcement_id = ?", announcementID).First(&poll).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.buildPollResult(ctx, &poll, forUser)
}

func (r *AnnouncementRepository) buildPollResult(ctx context.Context, poll *domain.Poll, forUser int64) (*PollResult, error) {
	var opts []struct {
		ID    int64  `gorm:"column:id"`
		Text  string `gorm:"column:option_text"`
		Votes int64  `gorm:"column:votes"`
	}
	err := r.db.WithContext(ctx).
		Raw(`SELECT o.id, o.option_text, COUNT(v.id) AS votes
FROM poll_options o
LEFT JOIN poll_votes v ON v.option_id = o.id
WHERE o.poll_id = ?
GROUP BY o.id, o.option_text
ORDER BY o.id`, poll.ID).
		Scan(&opts).Error
	if err != nil {
		return nil, err
	}

	result := &PollResult{ID: poll.ID, Question: poll.Question}
	for _, o := range opts {
		result.Options = append(result.Options, PollOptionResult{ID: o.ID, Text: o.Text, Votes: o.Votes})
	}

	if forUser > 0 {
		var vote domain.PollVote
		err := r.db.WithContext(ctx).
			Where("poll_id = ? AND user_id = ?", poll.ID, forUser).
			First(&vote).Error
		switch {
		case err == nil:
			result.UserVote = &vote.OptionID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// user has not voted
		default:
			return nil, err
		}
	}
	return result, nil
}

// Vote records or moves a user's choice. A user holds at most one vote
// per poll; voting again switches the existing vote to the new option.
func (r *AnnouncementRepository) Vote(ctx context.Context, pollID, optionID, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var opt domain.PollOption
		if err := tx.First(&opt, optionID).Error; err != nil {
			return err
		}
		if opt.PollID != pollID {
			return ErrOptionNotInPoll
		}

		var existing domain.PollVote
		err := tx.Where("poll_id = ? AND user_id = ?", pollID, userID).First(&existing).Error
		switch {
		case err == nil:
			return tx.Model(&existing).Update("option_id", optionID).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := domain.PollVote{PollID: pollID, OptionID: optionID, UserID: userID}
			return tx.Create(&vote).Error
		default:
			return err
		}
	})
}
