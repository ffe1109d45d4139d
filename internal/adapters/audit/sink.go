package audit

import (
	"context"

	"github.com/okian/compass/pkg/logger"
)

// LogSink writes drained audit records to the structured log. It is the
// default sink when no persistent backend is configured.
type LogSink struct {
	logger logger.Logger
}

// NewLogSink creates a sink that logs each drained record.
func NewLogSink(log logger.Logger) *LogSink {
	return &LogSink{logger: log}
}

// Write logs every record in the batch at info level.
func (s *LogSink) Write(ctx context.Context, records []Record) error {
	for _, rec := range records {
		s.logger.Info(ctx, "audit",
			logger.String("id", rec.ID),
			logger.String("user_id", rec.UserID),
			logger.String("method", rec.Method),
			logger.String("path", rec.Path),
			logger.Bool("demo_mode", rec.DemoMode),
			logger.String("signal", rec.Signal),
			logger.Bool("simulated", rec.Simulated),
			logger.String("remote_addr", rec.RemoteAddr),
			logger.String("user_agent", rec.UserAgent),
		)
	}
	return nil
}
