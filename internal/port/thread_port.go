package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/podstudio/internal/domain"
)

type ThreadRepository interface {
	GetThread(ctx context.Context, threadID uuid.UUID) (domain.MessageThread, error)
	ListMessages(ctx context.Context, threadID uuid.UUID) ([]domain.Message, error)
	PostMessage(ctx context.Context, threadID uuid.UUID, sender, body string) (domain.Message, error)
}
