package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"food-ordering/db"
)

// NotificationLog persists every outbound order notification.
type NotificationLog struct {
	db db.DBTX
}

func NewNotificationLog(conn db.DBTX) *NotificationLog {
	return &NotificationLog{db: conn}
}

// Record stores a sent message and returns the new row id.
func (l *NotificationLog) Record(ctx context.Context, orderID, provider, messageSid, body string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := l.db.Exec(ctx, `
		INSERT INTO notifications (id, order_id, provider, message_sid, body)
		VALUES ($1, $2, $3, $4, $5)`,
		id, orderID, provider, messageSid, body,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert notification: %w", err)
	}
	return id, nil
}
