package xgrab

import "errors"

// Capture failure kinds. Every capture attempt fails with exactly one
// of these; callers that only care about success can treat them alike.
var (
	ErrNoDisplay   = errors.New("xgrab: no display configured")
	ErrConnect     = errors.New("xgrab: cannot connect to display")
	ErrOutOfBounds = errors.New("xgrab: capture region out of bounds")
	ErrShm         = errors.New("xgrab: shared memory setup failed")
	ErrCapture     = errors.New("xgrab: image request failed")
)
