package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"societyhub/internal/domain"
)

// ErrBillAlreadyPaid means the bill was paid before this request landed.
var ErrBillAlreadyPaid = errors.New("bill already paid")

type BillRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

func (r *BillRepository) Create(ctx context.Context, b *domain.Bill) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BillRepository) GetByID(ctx context.Context, id int64) (*domain.Bill, error) {
	var b domain.Bill
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BillRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&bills).Error
	return bills, err
}

func (r *BillRepository) GetAll(ctx context.Context) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := r.db.WithContext(ctx).Order("due_date ASC").Find(&bills).Error
	return bills, err
}

func (r *BillRepository) Update(ctx context.Context, b *domain.Bill) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BillRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Bill{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkPaid flips an unpaid bill to paid with the given payment date.
// The status filter makes a double payment a reported error rather than
// a silent date overwrite.
func (r *BillRepository) MarkPaid(ctx context.Context, id int64, paidAt time.Time) (*domain.Bill, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Bill{}).
		Where("id = ? AND status <> ?", id, domain.BillPaid).
		Updates(map[string]any{
			"status":     domain.BillPaid,
			"paid_date":  paidAt,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var b domain.Bill
		if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
			return nil, err
		}
		return nil, ErrBillAlreadyPaid
	}
	var b domain.Bill
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetDueWithin lists unpaid bills whose due date falls inside
// [now, now+window]. Used by the daily reminder job.
func (r *BillRepository) GetDueWithin(ctx context.Context, now time.Time, window time.Duration) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := r.db.WithContext(ctx).
		Where("status <> ?", domain.BillPaid).
		Where("due_date >= ? AND due_date <= ?", now, now.Add(window)).
		Find(&bills).Error
	return bills, err
}
