package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"societyhub/internal/domain"
)

// ErrComplaintResolved means the complaint was already closed.
var ErrComplaintResolved = errors.New("complaint already resolved")

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// ComplaintDetail is a complaint row joined with the reporter's name
// and unit.
type ComplaintDetail struct {
	ID                    int64      `gorm:"column:id" json:"id"`
	UserID                int64      `gorm:"column:user_id" json:"user_id"`
	Title                 string     `gorm:"column:title" json:"title"`
	Description           string     `gorm:"column:description" json:"description"`
	Category              string     `gorm:"column:category" json:"category"`
	Priority              string     `gorm:"column:priority" json:"priority"`
	Status                string     `gorm:"column:status" json:"status"`
	ResolutionDescription *string    `gorm:"column:resolution_description" json:"resolution_description"`
	ResolvedAt            *time.Time `gorm:"column:resolved_at" json:"resolved_at"`
	ReporterName          string     `gorm:"column:reporter_name" json:"reporter_name"`
	ReporterUnit          string     `gorm:"column:reporter_unit" json:"reporter_unit,omitempty"`
	CreatedAt             time.Time  `gorm:"column:created_at" json:"created_at"`
}

const complaintDetailSelect = `
SELECT
  c.id, c.user_id, c.title, c.description, c.category, c.priority,
  c.status, c.resolution_description, c.resolved_at, c.created_at,
  u.name AS reporter_name,
  u.unit AS reporter_unit
FROM complaints c
JOIN users u ON u.id = c.user_id
`

func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	var c domain.Complaint
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComplaintRepository) GetByUser(ctx context.Context, userID int64) ([]ComplaintDetail, error) {
	var rows []ComplaintDetail
	err := r.db.WithContext(ctx).
		Raw(complaintDetailSelect+"WHERE c.user_id = ? ORDER BY c.created_at DESC", userID).
		Scan(&rows).Error
	return rows, err
}

func (r *ComplaintRepository) GetAll(ctx context.Context) ([]ComplaintDetail, error) {
	var rows []ComplaintDetail
	err := r.db.WithContext(ctx).
		Raw(complaintDetailSelect + "ORDER BY c.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ComplaintRepository) Update(ctx context.Context, c *domain.Complaint) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Resolve closes an open complaint, recording who closed it and how.
func (r *ComplaintRepository) Resolve(ctx context.Context, id, resolvedBy int64, resolution string, at time.Time) (*domain.Complaint, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Complaint{}).
		Where("id = ? AND status = ?", id, domain.ComplaintOpen).
		Updates(map[string]any{
			"status":                 domain.ComplaintResolved,
			"resolution_description": resolution,
			"resolved_by":            resolvedBy,
			"resolved_at":            at,
			"updated_at":             time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var c domain.Complaint
		if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
			return nil, err
		}
		return nil, ErrComplaintResolved
	}
	var c domain.Complaint
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
