package roster

import "errors"

// Sentinel kinds for roster reading errors.
var (
	ErrNoHeader = errors.New("roster file has no header row")
)
