// Package simulate provides collaborators with artificial latency, standing in for the
// "processing payment" spinner and the designer's typing delay.
package simulate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/port"
	"github.com/sirupsen/logrus"
)

// DelayedCartStore waits a fixed duration before delegating. There is no retry.
type DelayedCartStore struct {
	next  port.CartStore
	delay time.Duration
}

var _ port.CartStore = (*DelayedCartStore)(nil)

func NewDelayedCartStore(next port.CartStore, delay time.Duration) *DelayedCartStore {
	return &DelayedCartStore{next: next, delay: delay}
}

func (s *DelayedCartStore) SubmitCartItem(ctx context.Context, ownerID string, req domain.OrderRequest) error {
	if err := Processing(ctx, s.delay); err != nil {
		return err
	}

	return s.next.SubmitCartItem(ctx, ownerID, req)
}

// Processing blocks for d, or until ctx is done.
func Processing(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("simulated processing: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

const defaultReply = "Thanks for the details! I'm reviewing your request and will share a first draft soon."

// DesignerAutoReply wraps a cart store and, after each successful submission, posts a canned
// designer reply to the new thread once the delay has passed.
type DesignerAutoReply struct {
	next    port.CartStore
	threads port.ThreadRepository
	delay   time.Duration
	reply   string
	logger  logrus.FieldLogger

	wg      sync.WaitGroup
	closing chan struct{}
	once    sync.Once
}

var _ port.CartStore = (*DesignerAutoReply)(nil)

func NewDesignerAutoReply(next port.CartStore, threads port.ThreadRepository, delay time.Duration, logger logrus.FieldLogger) *DesignerAutoReply {
	return &DesignerAutoReply{
		next:    next,
		threads: threads,
		delay:   delay,
		reply:   defaultReply,
		logger:  logger,
		closing: make(chan struct{}),
	}
}

func (a *DesignerAutoReply) SubmitCartItem(ctx context.Context, ownerID string, req domain.OrderRequest) error {
	if err := a.next.SubmitCartItem(ctx, ownerID, req); err != nil {
		return err
	}

	a.wg.Add(1)
	go a.replyLater(req.Thread.ID)

	return nil
}

func (a *DesignerAutoReply) replyLater(threadID uuid.UUID) {
	defer a.wg.Done()

	timer := time.NewTimer(a.delay)
	defer timer.Stop()

	select {
	case <-a.closing:
		return
	case <-timer.C:
	}

	if _, err := a.threads.PostMessage(context.Background(), threadID, domain.SenderDesigner, a.reply); err != nil {
		a.logger.WithError(err).WithField("thread_id", threadID).Error("designer auto-reply failed")
		return
	}
	a.logger.WithField("thread_id", threadID).Debug("designer auto-reply posted")
}

// Close cancels pending replies and waits for in-flight ones to finish.
func (a *DesignerAutoReply) Close() {
	a.once.Do(func() { close(a.closing) })
	a.wg.Wait()
}

// Wait blocks until every scheduled reply has been posted.
func (a *DesignerAutoReply) Wait() {
	a.wg.Wait()
}
