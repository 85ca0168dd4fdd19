package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"food-ordering/notify"
)

// ErrInvalidOrder means the order had no items or no customer.
var ErrInvalidOrder = errors.New("invalid order data")

// NotificationRecorder stores sent notifications. *NotificationLog implements it.
type NotificationRecorder interface {
	Record(ctx context.Context, orderID, provider, messageSid, body string) (uuid.UUID, error)
}

// NotificationGateway turns an order into one outbound provider message.
type NotificationGateway struct {
	sender      notify.Sender
	provider    string
	destination string
	recorder    NotificationRecorder // nil disables persistence
	log         *slog.Logger
}

func NewNotificationGateway(sender notify.Sender, provider, destination string, recorder NotificationRecorder, log *slog.Logger) *NotificationGateway {
	return &NotificationGateway{
		sender:      sender,
		provider:    provider,
		destination: destination,
		recorder:    recorder,
		log:         log,
	}
}

// SendOrderNotification validates the order shape, renders it and relays it.
// Returns the provider message id.
func (g *NotificationGateway) SendOrderNotification(ctx context.Context, req OrderRequest) (string, error) {
	if len(req.Items) == 0 || req.Customer == nil {
		return "", ErrInvalidOrder
	}

	body := RenderOrderMessage(req)
	sid, err := g.sender.Send(ctx, body, g.destination)
	if err != nil {
		return "", fmt.Errorf("send via %s: %w", g.provider, err)
	}
	g.log.InfoContext(ctx, "order notification sent", "action", "notification_sent", "order_id", req.OrderID, "provider", g.provider, "message_sid", sid)

	if g.recorder != nil {
		if _, err := g.recorder.Record(ctx, req.OrderID, g.provider, sid, body); err != nil {
			g.log.ErrorContext(ctx, "record notification failed", "action", "notification_record_failed", "order_id", req.OrderID, "error", err)
		}
	}
	return sid, nil
}
