package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type ComplaintStatus string

const (
	ComplaintOpen     ComplaintStatus = "open"
	ComplaintResolved ComplaintStatus = "resolved"
)

type Complaint struct {
	ID                    int64           `json:"id"`
	UserID                int64           `json:"user_id"`
	Title                 string          `json:"title"`
	Description           string          `json:"description" gorm:"type:text"`
	Category              string          `json:"category"`
	Status                ComplaintStatus `json:"status"`
	Date                  time.Time       `json:"date"`
	Unit                  string          `json:"unit,omitempty"`
	Priority              Priority        `json:"priority"`
	ResolutionDescription *string         `json:"resolution_description,omitempty" gorm:"type:text"`
	ResolvedBy            *int64          `json:"resolved_by,omitempty"`
	ResolvedAt            *time.Time      `json:"resolved_at,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}
