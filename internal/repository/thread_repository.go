package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/podstudio/internal/db"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/port"
)

// foreign_key_violation
const pgForeignKeyViolation = "23503"

type threadRepository struct {
	q *db.Queries
}

func NewThreads(pool *pgxpool.Pool) port.ThreadRepository {
	return &threadRepository{
		q: db.New(pool),
	}
}

func (r *threadRepository) GetThread(ctx context.Context, threadID uuid.UUID) (domain.MessageThread, error) {
	row, err := r.q.GetMessageThread(ctx, threadID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MessageThread{}, fmt.Errorf("thread[%s]: %w", threadID, domain.ErrThreadNotFound)
	}
	if err != nil {
		return domain.MessageThread{}, fmt.Errorf("q.GetMessageThread: %w", err)
	}

	instructions, err := unmarshalInstructions(row.DesignInstructions)
	if err != nil {
		return domain.MessageThread{}, fmt.Errorf("unmarshalInstructions: %w", err)
	}

	return domain.MessageThread{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		DesignerID:   row.DesignerID,
		ProductID:    row.ProductID,
		DesignID:     row.DesignID,
		Subject:      row.Subject,
		Summary:      row.Summary,
		Instructions: instructions,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func (r *threadRepository) ListMessages(ctx context.Context, threadID uuid.UUID) ([]domain.Message, error) {
	rows, err := r.q.ListMessages(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("q.ListMessages: %w", err)
	}

	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, domain.Message(row))
	}

	return messages, nil
}

func (r *threadRepository) PostMessage(ctx context.Context, threadID uuid.UUID, sender, body string) (domain.Message, error) {
	if sender == "" {
		return domain.Message{}, fmt.Errorf("sender is empty")
	}
	if body == "" {
		return domain.Message{}, fmt.Errorf("body is empty")
	}

	row, err := r.q.CreateMessage(ctx, db.CreateMessageParams{
		ID:       uuid.New(),
		ThreadID: threadID,
		Sender:   sender,
		Body:     body,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.Message{}, fmt.Errorf("thread[%s]: %w", threadID, domain.ErrThreadNotFound)
		}
		return domain.Message{}, fmt.Errorf("q.CreateMessage: %w", err)
	}

	return domain.Message(row), nil
}
