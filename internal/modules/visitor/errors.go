package visitor

import "errors"

var (
	ErrVisitorNotFound   = errors.New("visitor not found")
	ErrWrongPIN          = errors.New("incorrect pin")
	ErrAlreadyCheckedIn  = errors.New("visitor already checked in")
	ErrNotCheckedIn      = errors.New("visitor has not checked in")
	ErrAlreadyCheckedOut = errors.New("visitor already checked out")
)
