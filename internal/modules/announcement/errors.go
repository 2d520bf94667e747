package announcement

import "errors"

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrNoPoll               = errors.New("announcement has no poll")
	ErrOptionNotFound       = errors.New("poll option not found")
)
