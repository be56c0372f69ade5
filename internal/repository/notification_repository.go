package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/podstudio/internal/db"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/port"
	"github.com/sirupsen/logrus"
)

type notificationRepository struct {
	q      *db.Queries
	logger logrus.FieldLogger
	now    func() time.Time
}

func NewNotifications(pool *pgxpool.Pool, logger logrus.FieldLogger) port.NotificationRepository {
	return &notificationRepository{
		q:      db.New(pool),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Notify persists n. Failures are logged and dropped.
func (r *notificationRepository) Notify(ctx context.Context, n domain.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.now()
	}

	err := r.q.CreateNotification(ctx, db.CreateNotificationParams{
		OwnerID:   n.OwnerID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"owner": n.OwnerID,
			"kind":  n.Kind,
		}).Error("store notification")
	}
}

func (r *notificationRepository) List(ctx context.Context, ownerID string) ([]domain.Notification, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.ListNotifications(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListNotifications: %w", err)
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, domain.Notification{
			OwnerID:   row.OwnerID,
			Kind:      domain.NotificationKind(row.Kind),
			Title:     row.Title,
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
		})
	}

	return notifications, nil
}
