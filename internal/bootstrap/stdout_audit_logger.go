package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through the global zap logger under
// a dedicated "audit" name so they can be filtered out of request noise.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(_ context.Context, entry AuditLog) {
	zap.L().Named("audit").Info(entry.Action,
		zap.Time("at", time.Now().UTC()),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
