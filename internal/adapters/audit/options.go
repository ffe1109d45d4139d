package audit

import (
	"time"

	"github.com/okian/compass/pkg/logger"
)

// Option applies a configuration option to the recorder.
type Option func(*InMemoryRecorder)

// WithCapacity sets the maximum number of buffered records.
// Non-positive values keep the default.
func WithCapacity(capacity int) Option {
	return func(r *InMemoryRecorder) {
		if capacity > 0 {
			r.capacity = capacity
		}
	}
}

// WithFlushInterval sets how often buffered records are drained to the sink.
func WithFlushInterval(interval time.Duration) Option {
	return func(r *InMemoryRecorder) {
		if interval > 0 {
			r.flushInterval = interval
		}
	}
}

// WithSink sets the drain target for buffered records.
func WithSink(sink Sink) Option {
	return func(r *InMemoryRecorder) {
		if sink != nil {
			r.sink = sink
		}
	}
}

// WithLogger sets the recorder's logger.
func WithLogger(log logger.Logger) Option {
	return func(r *InMemoryRecorder) {
		if log != nil {
			r.logger = log
		}
	}
}
