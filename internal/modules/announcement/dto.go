package announcement

type PollInput struct {
	Question string   `json:"question" validate:"required,max=300"`
	Options  []string `json:"options" validate:"required,min=2,max=10,dive,required,max=100"`
}

type CreateAnnouncementRequest struct {
	Title    string     `json:"title" validate:"required,min=3,max=150"`
	Content  string     `json:"content" validate:"required,max=5000"`
	Date     string     `json:"date" validate:"required,datetime=2006-01-02"`
	Priority string     `json:"priority" validate:"required,oneof=low medium high"`
	Poll     *PollInput `json:"poll" validate:"omitempty"`
}

type UpdateAnnouncementRequest struct {
	Title    string `json:"title" validate:"omitempty,min=3,max=150"`
	Content  string `json:"content" validate:"omitempty,max=5000"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type VoteRequest struct {
	OptionID int64 `json:"option_id" validate:"required,gt=0"`
}
