package service

import (
	"context"
	"sync"
	"time"

	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/mail"
	"github.com/cgabhane/author-website/internal/metrics"
)

// Notifier sends emails in the background. Each email gets its own
// goroutine and timeout, so one failing send never affects another or the
// request that triggered it.
type Notifier struct {
	sender  mail.Sender
	log     logger.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewNotifier(sender mail.Sender, log logger.Logger, timeout time.Duration) *Notifier {
	return &Notifier{
		sender:  sender,
		log:     log,
		timeout: timeout,
	}
}

// Notify schedules each email for delivery and returns immediately
func (n *Notifier) Notify(ctx context.Context, emails ...mail.Email) {
	detached := context.WithoutCancel(ctx)
	for _, e := range emails {
		n.wg.Add(1)
		go func(e mail.Email) {
			defer n.wg.Done()
			n.send(detached, e)
		}(e)
	}
}

func (n *Notifier) send(ctx context.Context, e mail.Email) {
	kind := string(e.Kind())
	defer func() {
		if r := recover(); r != nil {
			metrics.EmailsSent.WithLabelValues(kind, "failed").Inc()
			n.log.Error("email send panicked", map[string]interface{}{"kind": kind, "panic": r})
		}
	}()

	msg, err := e.Render()
	if err != nil {
		metrics.EmailsSent.WithLabelValues(kind, "failed").Inc()
		n.log.WithError(err).Warn("email render failed", map[string]interface{}{"kind": kind})
		return
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.sender.Send(ctx, msg); err != nil {
		metrics.EmailsSent.WithLabelValues(kind, "failed").Inc()
		n.log.WithError(err).Warn("email send failed", map[string]interface{}{"kind": kind, "to": msg.To})
		return
	}
	metrics.EmailsSent.WithLabelValues(kind, "sent").Inc()
	n.log.Debug("email sent", map[string]interface{}{"kind": kind, "to": msg.To})
}

// Wait blocks until every scheduled email has finished
func (n *Notifier) Wait() {
	n.wg.Wait()
}
