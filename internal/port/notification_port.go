package port

import (
	"context"

	"github.com/nikolayk812/podstudio/internal/domain"
)

// NotificationSink is fire-and-forget: implementations report their own failures.
type NotificationSink interface {
	Notify(ctx context.Context, n domain.Notification)
}

type NotificationRepository interface {
	NotificationSink

	List(ctx context.Context, ownerID string) ([]domain.Notification, error)
}
