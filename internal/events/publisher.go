package events

import (
	"context"
	"fmt"
	"time"

	"github.com/eaglebank/account-grpc/internal/models"
	"github.com/redis/go-redis/v9"
)

// Publisher announces account changes on account.events. Every write trims
// the stream to roughly maxLen entries.
type Publisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewPublisher falls back to DefaultStreamMaxLen when maxLen is not positive.
func NewPublisher(client *redis.Client, maxLen int64) *Publisher {
	if maxLen <= 0 {
		maxLen = DefaultStreamMaxLen
	}
	return &Publisher{
		client: client,
		stream: AccountEventsStream,
		maxLen: maxLen,
	}
}

// PublishAccountSaved appends an account.saved entry for the stored account.
func (p *Publisher) PublishAccountSaved(ctx context.Context, account models.Account) error {
	payload, err := EncodeEvent(AccountSaved, NewAccountSavedEvent(account), time.Now().UTC())
	if err != nil {
		return err
	}

	if err := p.client.XAdd(ctx, p.addArgs(payload)).Err(); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", AccountSaved, p.stream, err)
	}
	return nil
}

func (p *Publisher) addArgs(payload string) *redis.XAddArgs {
	return &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"event": payload,
		},
	}
}
