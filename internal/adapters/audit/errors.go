package audit

import "errors"

// Recorder errors.
var (
	// ErrShutdownTimeout indicates the drain loop did not stop in time.
	ErrShutdownTimeout = errors.New("audit recorder shutdown timed out")
)
