package domain

import "time"

type UserRole string

const (
	RoleResident UserRole = "resident"
	RoleSecurity UserRole = "security"
	RoleAdmin    UserRole = "admin"
)

func ValidRole(r string) bool {
	switch UserRole(r) {
	case RoleResident, RoleSecurity, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required,min=2"`
	PhoneNumber  string    `json:"phone_number" gorm:"uniqueIndex" validate:"required"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Unit         string    `json:"unit,omitempty"`
	EmployeeID   string    `json:"employee_id,omitempty" gorm:"column:employee_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
