package complaint

import "errors"

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrAlreadyResolved   = errors.New("complaint is already resolved")
	ErrNotOwner          = errors.New("complaint belongs to another resident")
)
