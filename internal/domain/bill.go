package domain

import "time"

type BillStatus string

const (
	BillPaid     BillStatus = "paid"
	BillPending  BillStatus = "pending"
	BillUpcoming BillStatus = "upcoming"
)

func ValidBillStatus(s string) bool {
	switch BillStatus(s) {
	case BillPaid, BillPending, BillUpcoming:
		return true
	}
	return false
}

type Bill struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	DueDate     time.Time  `json:"due_date"`
	Status      BillStatus `json:"status"`
	PaidDate    *time.Time `json:"paid_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
