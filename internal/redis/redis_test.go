package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"sportapp/internal/domain"
	"sportapp/pkg/e"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestAlertQueue_SendAndPop(t *testing.T) {
	_, client := newTestClient(t)
	q := NewAlertQueue(client, "alerts")
	ctx := context.Background()

	first := domain.AdverseIncidentMessage{UserID: "u1", Message: "Fog", Date: "2025-12-23T12:00:00Z"}
	second := domain.AdverseIncidentMessage{UserID: "u2", Message: "Fire", Date: "2025-12-23T12:00:01Z"}
	if err := q.Send(ctx, first); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := q.Send(ctx, second); err != nil {
		t.Fatalf("send: %v", err)
	}
	if n, _ := q.Len(ctx); n != 2 {
		t.Fatalf("want 2 queued, got %d", n)
	}

	got, err := q.BRPop(ctx, time.Second)
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if got != first {
		t.Fatalf("queue must be FIFO: got %+v", got)
	}
	got, err = q.BRPop(ctx, time.Second)
	if err != nil || got != second {
		t.Fatalf("unexpected pop: %+v, %v", got, err)
	}
}

func TestAlertQueue_EmptyPop(t *testing.T) {
	_, client := newTestClient(t)
	q := NewAlertQueue(client, "alerts")

	_, err := q.BRPop(context.Background(), 100*time.Millisecond)
	if !errors.Is(err, e.ErrAlertQueueEmpty) {
		t.Fatalf("want ErrAlertQueueEmpty, got %v", err)
	}
}

func TestAlertQueue_SendFailure(t *testing.T) {
	mr, client := newTestClient(t)
	q := NewAlertQueue(client, "alerts")
	mr.Close()

	err := q.Send(context.Background(), domain.AdverseIncidentMessage{UserID: "u1"})
	if !errors.Is(err, e.ErrExternalService) {
		t.Fatalf("want ErrExternalService, got %v", err)
	}
}

func TestPollerLock_SingleHolder(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	a := NewPollerLock(client, "poller", time.Minute)
	b := NewPollerLock(client, "poller", time.Minute)

	if ok, err := a.Acquire(ctx); err != nil || !ok {
		t.Fatalf("a must acquire: %v, %v", ok, err)
	}
	if ok, err := b.Acquire(ctx); err != nil || ok {
		t.Fatalf("b must not acquire while a holds: %v, %v", ok, err)
	}
	if ok, err := a.Acquire(ctx); err != nil || !ok {
		t.Fatalf("a must renew its own lease: %v, %v", ok, err)
	}

	if err := b.Release(ctx); err != nil {
		t.Fatalf("release: %v", err)
	}
	if !mr.Exists("poller") {
		t.Fatal("b must not release a's lease")
	}

	if err := a.Release(ctx); err != nil {
		t.Fatalf("release: %v", err)
	}
	if ok, err := b.Acquire(ctx); err != nil || !ok {
		t.Fatalf("b must acquire after release: %v, %v", ok, err)
	}
}

func TestPollerLock_Expires(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	a := NewPollerLock(client, "poller", time.Second)
	b := NewPollerLock(client, "poller", time.Second)

	if ok, _ := a.Acquire(ctx); !ok {
		t.Fatal("a must acquire")
	}
	mr.FastForward(2 * time.Second)
	if ok, err := b.Acquire(ctx); err != nil || !ok {
		t.Fatalf("b must acquire an expired lease: %v, %v", ok, err)
	}
}
