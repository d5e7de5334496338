package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sportapp/internal/domain"
	"sportapp/pkg/e"

	"github.com/go-resty/resty/v2"
)

const forwardAttempts = 3

// AlertForwarder drains the alert queue and POSTs every message to the push webhook.
type AlertForwarder struct {
	logger  *slog.Logger
	url     string
	queue   AlertQueue
	http    *resty.Client
	backoff time.Duration
	pop     time.Duration
}

func NewAlertForwarder(logger *slog.Logger, url string, q AlertQueue) *AlertForwarder {
	return &AlertForwarder{
		logger:  logger,
		url:     url,
		queue:   q,
		http:    resty.New().SetTimeout(5 * time.Second).SetHeader("Content-Type", "application/json"),
		backoff: time.Second,
		pop:     5 * time.Second,
	}
}

// WithBackoff sets the unit of the linear retry backoff.
func (f *AlertForwarder) WithBackoff(d time.Duration) *AlertForwarder {
	f.backoff = d
	return f
}

func (f *AlertForwarder) WithPopTimeout(d time.Duration) *AlertForwarder {
	f.pop = d
	return f
}

func (f *AlertForwarder) Run(ctx context.Context) {
	f.logger.Info("alert forwarder started", slog.String("url", f.url))

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("alert forwarder stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		msg, err := f.queue.BRPop(ctx, f.pop)
		if err != nil {
			if errors.Is(err, e.ErrAlertQueueEmpty) || ctx.Err() != nil {
				continue
			}
			f.logger.Error("alert queue pop failed", slog.Any("error", err))
			sleepCtx(ctx, 500*time.Millisecond)
			continue
		}

		f.Forward(ctx, msg)
	}
}

// Forward POSTs msg, retrying with linear backoff. It reports whether the
// webhook accepted the message.
func (f *AlertForwarder) Forward(ctx context.Context, msg domain.AdverseIncidentMessage) bool {
	for attempt := 1; attempt <= forwardAttempts; attempt++ {
		if ctx.Err() != nil {
			f.logger.Info("stop retries due to context cancel")
			return false
		}

		resp, err := f.http.R().SetContext(ctx).SetBody(msg).Post(f.url)
		if err == nil && resp.IsSuccess() {
			f.logger.Debug("alert forwarded", slog.String("user_id", msg.UserID))
			return true
		}

		var reason string
		if err != nil {
			reason = err.Error()
		} else {
			reason = resp.Status()
		}
		f.logger.Warn("alert webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", f.url),
			slog.String("reason", reason))

		if attempt < forwardAttempts {
			sleepCtx(ctx, time.Duration(attempt)*f.backoff)
		}
	}
	f.logger.Error("alert dropped after retries", slog.String("user_id", msg.UserID))
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
