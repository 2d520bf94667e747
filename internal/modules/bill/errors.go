package bill

import "errors"

var (
	ErrBillNotFound = errors.New("bill not found")
	ErrAlreadyPaid  = errors.New("bill is already paid")
	ErrNotOwner     = errors.New("bill belongs to another resident")
)
