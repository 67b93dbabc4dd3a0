package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go-booking-backend/internal/domain"
	"go-booking-backend/pkg/email"
	"go-booking-backend/pkg/logger"
)

type notifyFailure struct {
	kind domain.Kind
	err  error
	log  *slog.Logger
}

// NotifyDispatcher runs each notification in its own goroutine, detached from
// the request. Failures travel over an internal channel whose only reader logs
// them; nothing is ever reported back to the submitter.
type NotifyDispatcher struct {
	notifier domain.Notifier
	timeout  time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	failures  chan notifyFailure
	drained   chan struct{}
	closeOnce sync.Once
}

func NewNotifyDispatcher(notifier domain.Notifier, timeout time.Duration) *NotifyDispatcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	d := &NotifyDispatcher{
		notifier: notifier,
		timeout:  timeout,
		failures: make(chan notifyFailure, 16),
		drained:  make(chan struct{}),
	}
	go d.drain()
	return d
}

// Dispatch starts one notification attempt and returns immediately.
// The attempt keeps the request's values (request id, logger) but not its cancellation.
func (d *NotifyDispatcher) Dispatch(ctx context.Context, note domain.Notification) {
	log := logger.FromContext(ctx)

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		log.Warn("Notification dropped, dispatcher is shutting down", "type", note.Kind)
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := d.notifier.Notify(sendCtx, note); err != nil {
			d.failures <- notifyFailure{kind: note.Kind, err: err, log: log}
		}
	}()
}

func (d *NotifyDispatcher) drain() {
	defer close(d.drained)
	for f := range d.failures {
		if errors.Is(f.err, email.ErrUnconfigured) {
			f.log.Warn("Notification skipped", "type", f.kind, "error", f.err)
			continue
		}
		f.log.Error("Notification failed", "type", f.kind, "error", f.err)
	}
}

// Close stops accepting work and waits for in-flight notifications until ctx is done.
func (d *NotifyDispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()

		go func() {
			d.wg.Wait()
			close(d.failures)
		}()
	})

	select {
	case <-d.drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
