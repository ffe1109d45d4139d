// Package audit records request-level audit entries in a bounded in-memory
// buffer and drains them asynchronously to a configurable sink.
package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/compass/pkg/logger"
	"github.com/okian/compass/pkg/metrics"
)

// Default recorder configuration constants.
const (
	defaultCapacity      = 1000
	defaultFlushInterval = 5 * time.Second
)

// Record is a single audit entry describing one classified request.
type Record struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"userId"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	DemoMode   bool      `json:"demoMode"`
	Signal     string    `json:"signal"`
	Simulated  bool      `json:"simulated"`
	RemoteAddr string    `json:"remoteAddr"`
	UserAgent  string    `json:"userAgent"`
}

// Sink receives drained audit records. Implementations must tolerate
// being called from a single background goroutine.
type Sink interface {
	Write(ctx context.Context, records []Record) error
}

// Recorder accepts audit records and drains them in the background.
type Recorder interface {
	// Record buffers an entry. It never blocks the caller; when the
	// buffer is full the oldest entry is dropped to make room.
	Record(ctx context.Context, rec Record)

	// Run starts the drain loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown flushes remaining entries and stops the drain loop.
	Shutdown(ctx context.Context) error

	// Snapshot returns a copy of the currently buffered entries, oldest first.
	Snapshot() []Record

	// Len reports the number of buffered entries.
	Len() int
}

// InMemoryRecorder implements Recorder with a mutex-guarded ring buffer.
type InMemoryRecorder struct {
	mu   sync.Mutex
	buf  []Record
	head int
	size int

	capacity      int
	flushInterval time.Duration
	sink          Sink

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewInMemoryRecorder creates a recorder with configuration options.
// When no sink is configured, drained records go to the log sink.
func NewInMemoryRecorder(opts ...Option) *InMemoryRecorder {
	r := &InMemoryRecorder{
		capacity:      defaultCapacity,
		flushInterval: defaultFlushInterval,
		shutdown:      make(chan struct{}),
		done:          make(chan struct{}),
		logger:        logger.Get().Named("audit"),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.sink == nil {
		r.sink = NewLogSink(r.logger)
	}
	r.buf = make([]Record, r.capacity)

	return r
}

// Record buffers rec, filling in the ID and timestamp when absent.
// The oldest entry is evicted when the buffer is at capacity.
func (r *InMemoryRecorder) Record(ctx context.Context, rec Record) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	r.mu.Lock()
	if r.size == r.capacity {
		// Evict the oldest entry.
		r.head = (r.head + 1) % r.capacity
		r.size--
		metrics.RecordAuditDropped()
	}
	r.buf[(r.head+r.size)%r.capacity] = rec
	r.size++
	size := r.size
	r.mu.Unlock()

	metrics.RecordAuditRecord()
	metrics.UpdateAuditBufferSize(size)
}

// Run drains the buffer to the sink on a fixed interval until ctx is
// canceled or Shutdown is called. A final flush runs on exit.
func (r *InMemoryRecorder) Run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.flush(context.WithoutCancel(ctx))
			return
		case <-r.shutdown:
			r.flush(ctx)
			return
		case <-ticker.C:
			r.flush(ctx)
		}
	}
}

// Shutdown stops the drain loop and waits for the final flush.
func (r *InMemoryRecorder) Shutdown(ctx context.Context) error {
	close(r.shutdown)

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		r.logger.Warn(ctx, "audit shutdown timed out")
		return fmt.Errorf("%w: %w", ErrShutdownTimeout, ctx.Err())
	}
}

// Snapshot returns the buffered entries, oldest first.
func (r *InMemoryRecorder) Snapshot() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, 0, r.size)
	for i := 0; i < r.size; i++ {
		out = append(out, r.buf[(r.head+i)%r.capacity])
	}
	return out
}

// Len reports the number of buffered entries.
func (r *InMemoryRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// flush hands the buffered entries to the sink and clears the buffer.
// Entries are dropped on sink failure; the failure is counted and logged.
func (r *InMemoryRecorder) flush(ctx context.Context) {
	r.mu.Lock()
	if r.size == 0 {
		r.mu.Unlock()
		return
	}
	batch := make([]Record, 0, r.size)
	for i := 0; i < r.size; i++ {
		batch = append(batch, r.buf[(r.head+i)%r.capacity])
	}
	r.head = 0
	r.size = 0
	r.mu.Unlock()

	metrics.UpdateAuditBufferSize(0)

	if err := r.sink.Write(ctx, batch); err != nil {
		metrics.RecordAuditSinkError()
		r.logger.Error(ctx, "audit sink write failed",
			logger.Int("records", len(batch)),
			logger.Error(err))
	}
}
