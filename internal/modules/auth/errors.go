package auth

import "errors"

var (
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrMissingUnit        = errors.New("unit is required for residents")
	ErrMissingEmployeeID  = errors.New("employee id is required for security staff")
)
