package generator

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrEmptyRoster   = errors.New("roster has no entries")
	ErrNoDates       = errors.New("no test dates requested")
	ErrBadDateWindow = errors.New("random date window is invalid")
)
