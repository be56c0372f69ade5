package notify

import (
	"context"

	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/port"
	"github.com/sirupsen/logrus"
)

// LogSink writes notifications to the log. Errors are logged at error level, everything else at info.
type LogSink struct {
	logger logrus.FieldLogger
}

var _ port.NotificationSink = LogSink{}

func NewLogSink(logger logrus.FieldLogger) LogSink {
	return LogSink{logger: logger}
}

func (s LogSink) Notify(_ context.Context, n domain.Notification) {
	entry := s.logger.WithFields(logrus.Fields{
		"owner_id": n.OwnerID,
		"kind":     string(n.Kind),
		"title":    n.Title,
	})

	if n.Kind == domain.NotifyError {
		entry.Error(n.Message)
		return
	}
	entry.Info(n.Message)
}

// Fanout delivers every notification to each sink in order.
type Fanout []port.NotificationSink

func (f Fanout) Notify(ctx context.Context, n domain.Notification) {
	for _, sink := range f {
		sink.Notify(ctx, n)
	}
}
