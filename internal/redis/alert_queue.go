package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sportapp/internal/domain"
	"sportapp/pkg/e"

	"github.com/redis/go-redis/v9"
)

// AlertQueue is a redis list of AdverseIncidentMessage: LPUSH to send, BRPOP to consume.
type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Send(ctx context.Context, msg domain.AdverseIncidentMessage) error {
	const op = "redis.AlertQueue.Send"

	b, err := json.Marshal(msg)
	if err != nil {
		return e.Wrap(op, err)
	}
	if err := q.client.LPush(ctx, q.key, b).Err(); err != nil {
		return e.Wrap(op, errors.Join(e.ErrExternalService, err))
	}
	return nil
}

func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.AdverseIncidentMessage, error) {
	var msg domain.AdverseIncidentMessage

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return msg, e.ErrAlertQueueEmpty
		}
		return msg, err
	}
	if len(res) < 2 {
		return msg, e.ErrAlertQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &msg); err != nil {
		return msg, e.Wrap("redis.AlertQueue.BRPop", err)
	}
	return msg, nil
}

func (q *AlertQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
