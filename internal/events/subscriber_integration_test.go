//go:build integration

package events

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/eaglebank/account-grpc/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Run with: TEST_REDIS_ADDR=localhost:6379 go test -tags integration ./internal/events/
func openTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("failed to ping redis: %v", err)
	}
	return client
}

func TestStreamRoundTripIntegration(t *testing.T) {
	client := openTestRedis(t)
	ctx := context.Background()
	stream := "test:account.events:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), stream) })

	pub := &Publisher{client: client, stream: stream, maxLen: 100}
	failing := true
	var handled []string
	handler := func(_ context.Context, event Event) error {
		var data AccountSavedEvent
		if err := DecodeData(event, &data); err != nil {
			return err
		}
		if data.ID == "b" && failing {
			return fmt.Errorf("cache unavailable")
		}
		handled = append(handled, data.ID)
		return nil
	}
	sub := NewSubscriber(client, SubscriberConfig{
		Group:         "account-cache-test",
		Consumer:      "test-1",
		Stream:        stream,
		Handler:       handler,
		BlockDuration: 100 * time.Millisecond,
	})
	if err := client.XGroupCreateMkStream(ctx, stream, sub.group, "0").Err(); err != nil {
		t.Fatalf("create group: %v", err)
	}

	for _, id := range []string{"a", "b"} {
		if err := pub.PublishAccountSaved(ctx, models.Account{ID: id, Solde: 1e39, Type: "EPARGNE"}); err != nil {
			t.Fatalf("publish %s: %v", id, err)
		}
	}

	if err := sub.readMessages(ctx); err != nil {
		t.Fatalf("read: %v", err)
	}
	pending, err := client.XPending(ctx, stream, sub.group).Result()
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if pending.Count != 1 {
		t.Fatalf("expected the failed message to stay pending, got %d", pending.Count)
	}

	failing = false
	if err := sub.replayPending(ctx); err != nil {
		t.Fatalf("replay: %v", err)
	}
	pending, err = client.XPending(ctx, stream, sub.group).Result()
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if pending.Count != 0 {
		t.Errorf("expected nothing pending after replay, got %d", pending.Count)
	}
	if len(handled) != 2 || handled[0] != "a" || handled[1] != "b" {
		t.Errorf("unexpected handled order %v", handled)
	}

	if err := sub.DestroyGroup(ctx); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	groups, err := client.XInfoGroups(ctx, stream).Result()
	if err != nil {
		t.Fatalf("info groups: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("expected no consumer groups, got %v", groups)
	}
}

func TestPublisherCapsStreamIntegration(t *testing.T) {
	client := openTestRedis(t)
	ctx := context.Background()
	stream := "test:account.events:" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), stream) })

	pub := &Publisher{client: client, stream: stream, maxLen: 10}
	for i := 0; i < 1000; i++ {
		if err := pub.PublishAccountSaved(ctx, models.Account{ID: fmt.Sprint(i), Type: "COURANT"}); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}
	n, err := client.XLen(ctx, stream).Result()
	if err != nil {
		t.Fatalf("xlen: %v", err)
	}
	// MAXLEN ~ trims whole radix tree nodes (100 entries by default)
	if n > 200 {
		t.Errorf("expected the stream to be trimmed near 10 entries, got %d", n)
	}
}
