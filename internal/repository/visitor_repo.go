package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"societyhub/internal/domain"
)

var (
	// ErrAlreadyCheckedIn means the visitor's arrival was already recorded.
	ErrAlreadyCheckedIn = errors.New("visitor already checked in")
	// ErrAlreadyCheckedOut means the visitor's checkout was already recorded.
	ErrAlreadyCheckedOut = errors.New("visitor already checked out")
)

type VisitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

// VisitorDetail is a visitor row joined with the host resident's name.
type VisitorDetail struct {
	ID       int64      `gorm:"column:id" json:"id"`
	UserID   int64      `gorm:"column:user_id" json:"user_id"`
	Name     string     `gorm:"column:name" json:"name"`
	Phone    string     `gorm:"column:phone" json:"phone"`
	Email    string     `gorm:"column:email" json:"email,omitempty"`
	Address  string     `gorm:"column:address" json:"address,omitempty"`
	Purpose  string     `gorm:"column:purpose" json:"purpose"`
	Unit     string     `gorm:"column:unit" json:"unit"`
	HostName string     `gorm:"column:host_name" json:"host_name"`
	CheckIn  *time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut *time.Time `gorm:"column:check_out" json:"check_out"`
}

const visitorDetailSelect = `
SELECT
  v.id, v.user_id, v.name, v.phone, v.email, v.address, v.purpose,
  v.unit, v.check_in, v.check_out,
  u.name AS host_name
FROM visitors v
JOIN users u ON u.id = v.user_id
`

func (r *VisitorRepository) Create(ctx context.Context, v *domain.Visitor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VisitorRepository) GetByID(ctx context.Context, id int64) (*domain.Visitor, error) {
	var v domain.Visitor
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// CheckIn stamps the visitor's arrival once the gate has verified the
// pin. A second check-in attempt leaves the original time intact.
func (r *VisitorRepository) CheckIn(ctx context.Context, id int64, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Visitor{}).
		Where("id = ? AND check_in IS NULL", id).
		Update("check_in", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyCheckedIn
	}
	return nil
}

// Checkout stamps the visitor's departure. Guarded so a second checkout
// of the same visitor is reported instead of silently moving the time.
func (r *VisitorRepository) Checkout(ctx context.Context, id int64, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Visitor{}).
		Where("id = ? AND check_out IS NULL", id).
		Update("check_out", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var v domain.Visitor
		if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
			return err
		}
		return ErrAlreadyCheckedOut
	}
	return nil
}

// GetCurrent lists visitors on the premises: checked in, not yet out.
func (r *VisitorRepository) GetCurrent(ctx context.Context) ([]VisitorDetail, error) {
	var rows []VisitorDetail
	err := r.db.WithContext(ctx).
		Raw(visitorDetailSelect+"WHERE v.check_in IS NOT NULL AND v.check_out IS NULL ORDER BY v.check_in DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *VisitorRepository) GetHistoryByUser(ctx context.Context, userID int64) ([]VisitorDetail, error) {
	var rows []VisitorDetail
	err := r.db.WithContext(ctx).
		Raw(visitorDetailSelect+"WHERE v.user_id = ? ORDER BY v.created_at DESC", userID).
		Scan(&rows).Error
	return rows, err
}

func (r *VisitorRepository) GetAllHistory(ctx context.Context) ([]VisitorDetail, error) {
	var rows []VisitorDetail
	err := r.db.WithContext(ctx).
		Raw(visitorDetailSelect + "ORDER BY v.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
