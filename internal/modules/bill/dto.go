package bill

import "time"

type CreateBillRequest struct {
	UserID      int64   `json:"user_id" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required,max=200"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DueDate     string  `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type UpdateBillRequest struct {
	Description string  `json:"description" validate:"omitempty,max=200"`
	Amount      float64 `json:"amount" validate:"omitempty,gt=0"`
	DueDate     string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status      string  `json:"status" validate:"omitempty,oneof=paid pending upcoming"`
}

type BillResponse struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	DueDate     time.Time  `json:"due_date"`
	Status      string     `json:"status"`
	PaidDate    *time.Time `json:"paid_date,omitempty"`
}
