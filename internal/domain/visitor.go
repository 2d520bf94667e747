package domain

import "time"

type Visitor struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Purpose string `json:"purpose"`
	Unit    string `json:"unit,omitempty"`
	// 4-digit entry code shown to the host; the gate verifies it.
	PIN       string     `json:"pin" gorm:"column:pin"`
	CheckIn   *time.Time `json:"check_in,omitempty"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
