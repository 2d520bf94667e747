package visitor

import "time"

type CheckinRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Phone   string `json:"phone" validate:"required,min=7,max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=200"`
	Purpose string `json:"purpose" validate:"required,max=200"`
}

type VerifyPINRequest struct {
	PIN string `json:"pin" validate:"required,len=4,numeric"`
}

// CheckinResponse includes the PIN exactly once, at registration time.
// The host shares it with the visitor; it is never listed afterwards.
type CheckinResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Unit    string `json:"unit"`
	Purpose string `json:"purpose"`
	PIN     string `json:"pin"`
}

type VisitorResponse struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email,omitempty"`
	Address  string     `json:"address,omitempty"`
	Purpose  string     `json:"purpose"`
	Unit     string     `json:"unit"`
	HostName string     `json:"host_name,omitempty"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
}
