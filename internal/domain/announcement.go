package domain

import "time"

type Announcement struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content" gorm:"type:text"`
	Date      time.Time `json:"date"`
	Priority  Priority  `json:"priority"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Poll struct {
	ID             int64  `json:"id"`
	AnnouncementID int64  `json:"announcement_id"`
	Question       string `json:"question"`
}

type PollOption struct {
	ID     int64  `json:"id"`
	PollID int64  `json:"poll_id"`
	Text   string `json:"text" gorm:"column:option_text"`
}

type PollVote struct {
	ID        int64     `json:"id"`
	PollID    int64     `json:"poll_id" gorm:"uniqueIndex:idx_poll_votes_one_per_user"`
	OptionID  int64     `json:"option_id"`
	UserID    int64     `json:"user_id" gorm:"uniqueIndex:idx_poll_votes_one_per_user"`
	CreatedAt time.Time `json:"created_at"`
}
