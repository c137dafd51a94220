package audit

import (
	"context"
	"log/slog"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// SlogAuditLogger implements domain.AuditLogger on top of log/slog
type SlogAuditLogger struct {
	logger *slog.Logger
}

// NewSlogAuditLogger creates an audit logger writing structured records to
// the given slog logger. A nil logger falls back to slog.Default().
func NewSlogAuditLogger(logger *slog.Logger) domain.AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAuditLogger{logger: logger}
}

// LogEvent implements domain.AuditLogger
func (a *SlogAuditLogger) LogEvent(ctx context.Context, event *domain.AuditEvent) {
	attrs := []any{
		slog.String("event_type", string(event.EventType)),
		slog.Bool("success", event.Success),
		slog.Time("timestamp", event.Timestamp),
	}
	if event.UserID != 0 {
		attrs = append(attrs, slog.Uint64("user_id", uint64(event.UserID)))
	}
	if event.Email != "" {
		attrs = append(attrs, slog.String("email", event.Email))
	}

	if event.Success {
		a.logger.InfoContext(ctx, "audit", attrs...)
		return
	}
	if event.ErrorMsg != "" {
		attrs = append(attrs, slog.String("error", event.ErrorMsg))
	}
	a.logger.WarnContext(ctx, "audit", attrs...)
}
