package complaint

import (
	"time"

	"societyhub/internal/repository"
)

type CreateComplaintRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=150"`
	Description string `json:"description" validate:"required,max=2000"`
	Category    string `json:"category" validate:"required,max=50"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
}

type UpdateComplaintRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=150"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type ResolveComplaintRequest struct {
	ResolutionDescription string `json:"resolution_description" validate:"required,max=2000"`
}

type ComplaintResponse struct {
	ID                    int64      `json:"id"`
	UserID                int64      `json:"user_id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	Category              string     `json:"category"`
	Priority              string     `json:"priority"`
	Status                string     `json:"status"`
	ResolutionDescription *string    `json:"resolution_description,omitempty"`
	ResolvedAt            *time.Time `json:"resolved_at,omitempty"`
	ReporterName          string     `json:"reporter_name,omitempty"`
	ReporterUnit          string     `json:"reporter_unit,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

func toResponse(d repository.ComplaintDetail) ComplaintResponse {
	return ComplaintResponse{
		ID:                    d.ID,
		UserID:                d.UserID,
		Title:                 d.Title,
		Description:           d.Description,
		Category:              d.Category,
		Priority:              d.Priority,
		Status:                d.Status,
		ResolutionDescription: d.ResolutionDescription,
		ResolvedAt:            d.ResolvedAt,
		ReporterName:          d.ReporterName,
		ReporterUnit:          d.ReporterUnit,
		CreatedAt:             d.CreatedAt,
	}
}
