package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"societyhub/internal/domain"
)

var (
	// ErrOverlap means an approved booking already occupies the interval.
	ErrOverlap = errors.New("overlapping approved booking")
	// ErrNotPending means the booking left the pending state before the
	// update was applied.
	ErrNotPending = errors.New("booking is not pending")
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookedSlot is a pending-or-approved interval shown on the availability
// calendar.
type BookedSlot struct {
	StartTime time.Time `gorm:"column:start_time" json:"start_time"`
	EndTime   time.Time `gorm:"column:end_time" json:"end_time"`
}

// BookingDetail is a booking row joined with amenity and resident info.
type BookingDetail struct {
	ID              int64     `gorm:"column:id" json:"id"`
	AmenityID       int64     `gorm:"column:amenity_id" json:"amenity_id"`
	UserID          int64     `gorm:"column:user_id" json:"user_id"`
	StartTime       time.Time `gorm:"column:start_time" json:"start_time"`
	EndTime         time.Time `gorm:"column:end_time" json:"end_time"`
	Status          string    `gorm:"column:status" json:"status"`
	RejectionReason *string   `gorm:"column:rejection_reason" json:"rejection_reason"`
	AmenityName     string    `gorm:"column:amenity_name" json:"amenity_name"`
	ResidentName    string    `gorm:"column:resident_name" json:"resident_name"`
	ResidentUnit    string    `gorm:"column:resident_unit" json:"resident_unit,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

const bookingDetailSelect = `
SELECT
  ab.id,
  ab.amenity_id,
  ab.user_id,
  ab.start_time,
  ab.end_time,
  ab.status,
  ab.rejection_reason,
  ab.created_at,
  a.name AS amenity_name,
  u.name AS resident_name,
  u.unit AS resident_unit
FROM amenity_bookings ab
JOIN amenities a ON a.id = ab.amenity_id
JOIN users u ON u.id = ab.user_id
`

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetDetailByID(ctx context.Context, id int64) (*BookingDetail, error) {
	var row BookingDetail
	tx := r.db.WithContext(ctx).Raw(bookingDetailSelect+"WHERE ab.id = ?", id).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// countApprovedOverlap applies the half-open interval test: an existing
// approved booking conflicts when existing.start < end AND existing.end
// > start. Pending and rejected bookings never block (a slot is only
// locked once approved).
func countApprovedOverlap(tx *gorm.DB, amenityID int64, start, end time.Time, excludeID int64) (int64, error) {
	var cnt int64
	q := tx.Model(&domain.Booking{}).
		Where("amenity_id = ?", amenityID).
		Where("status = ?", domain.BookingApproved).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&cnt).Error
	return cnt, err
}

func (r *BookingRepository) HasApprovedOverlap(ctx context.Context, amenityID int64, start, end time.Time) (bool, error) {
	cnt, err := countApprovedOverlap(r.db.WithContext(ctx), amenityID, start, end, 0)
	return cnt > 0, err
}

// Create inserts a pending booking together with its fan-out
// notifications in one transaction. The overlap check runs inside the
// transaction while the amenity row is locked, so two concurrent
// requests for the same slot cannot both pass it.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, notifs []domain.Notification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// SQLite serializes writers on its own; the row lock is only
		// meaningful (and valid syntax) on postgres.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT id FROM amenities WHERE id = ? FOR UPDATE", b.AmenityID).Error; err != nil {
				return err
			}
		}

		cnt, err := countApprovedOverlap(tx, b.AmenityID, b.StartTime, b.EndTime, 0)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}

		b.Status = domain.BookingPending
		if err := tx.Create(b).Error; err != nil {
			return err
		}

		for i := range notifs {
			notifs[i].BookingID = &b.ID
			if err := tx.Create(&notifs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return mapOverlapErr(err)
}

// UpdateStatus applies a pending -> approved/rejected transition and
// inserts the resident notification, all in one transaction. Approving
// re-runs the overlap check so that the "approved bookings are pairwise
// disjoint" invariant holds even when two overlapping pending requests
// were racing for the same slot.
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus, reason *string, notif domain.Notification) (*domain.Booking, error) {
	var updated domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.First(&b, bookingID).Error; err != nil {
			return err
		}

		if status == domain.BookingApproved {
			if tx.Dialector.Name() == "postgres" {
				if err := tx.Exec("SELECT id FROM amenities WHERE id = ? FOR UPDATE", b.AmenityID).Error; err != nil {
					return err
				}
			}
			cnt, err := countApprovedOverlap(tx, b.AmenityID, b.StartTime, b.EndTime, b.ID)
			if err != nil {
				return err
			}
			if cnt > 0 {
				return ErrOverlap
			}
		}

		res := tx.Model(&domain.Booking{}).
			Where("id = ? AND status = ?", bookingID, domain.BookingPending).
			Updates(map[string]any{
				"status":           status,
				"rejection_reason": reason,
				"updated_at":       time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPending
		}

		notif.BookingID = &bookingID
		if err := tx.Create(&notif).Error; err != nil {
			return err
		}

		return tx.First(&updated, bookingID).Error
	})
	if err != nil {
		return nil, mapOverlapErr(err)
	}
	return &updated, nil
}

func (r *BookingRepository) GetBookedSlots(ctx context.Context, amenityID int64, start, end time.Time) ([]BookedSlot, error) {
	var rows []BookedSlot
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("start_time, end_time").
		Where("amenity_id = ?", amenityID).
		Where("status IN ?", []domain.BookingStatus{domain.BookingPending, domain.BookingApproved}).
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingRepository) GetPendingWithDetails(ctx context.Context) ([]BookingDetail, error) {
	var rows []BookingDetail
	err := r.db.WithContext(ctx).
		Raw(bookingDetailSelect+"WHERE ab.status = ? ORDER BY ab.start_time ASC", domain.BookingPending).
		Scan(&rows).Error
	return rows, err
}

func (r *BookingRepository) GetHistoryByUser(ctx context.Context, userID int64) ([]BookingDetail, error) {
	var rows []BookingDetail
	err := r.db.WithContext(ctx).
		Raw(bookingDetailSelect+"WHERE ab.user_id = ? ORDER BY ab.start_time DESC", userID).
		Scan(&rows).Error
	return rows, err
}

func (r *BookingRepository) GetAllHistory(ctx context.Context) ([]BookingDetail, error) {
	var rows []BookingDetail
	err := r.db.WithContext(ctx).
		Raw(bookingDetailSelect + "ORDER BY ab.start_time DESC").
		Scan(&rows).Error
	return rows, err
}

// CompleteExpired marks approved bookings whose interval has fully
// passed as completed. Run periodically by the jobs package.
func (r *BookingRepository) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("status = ? AND end_time < ?", domain.BookingApproved, now).
		Updates(map[string]any{
			"status":     domain.BookingCompleted,
			"updated_at": now.UTC(),
		})
	return res.RowsAffected, res.Error
}

// mapOverlapErr folds a postgres exclusion/unique violation raised by a
// schema-level no-overbooking constraint into ErrOverlap, so callers see
// one conflict error regardless of which guard fired first.
func mapOverlapErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" || pgErr.Code == "23P01" {
			return ErrOverlap
		}
	}
	return err
}
