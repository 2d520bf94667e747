package auth

// SignupRequest registers a new account. Unit is required for residents,
// EmployeeID for security staff.
type SignupRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=20"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	Role        string `json:"role" validate:"required,oneof=resident security admin"`
	Unit        string `json:"unit" validate:"omitempty,max=20"`
	EmployeeID  string `json:"employee_id" validate:"omitempty,max=40"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=resident security admin"`
}

type UserResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	Unit        string `json:"unit,omitempty"`
	EmployeeID  string `json:"employee_id,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
