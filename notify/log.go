package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogSender writes the message to the log instead of a provider. For local development.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, message, destination string) (string, error) {
	id := uuid.NewString()
	s.log.InfoContext(ctx, "order notification", "action", "notification_logged", "message_id", id, "to", destination, "body", message)
	return id, nil
}
