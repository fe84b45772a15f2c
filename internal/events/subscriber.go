package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eaglebank/account-grpc/internal/logger"
	"github.com/redis/go-redis/v9"
)

type Handler func(ctx context.Context, event Event) error

type Subscriber struct {
	client        *redis.Client
	group         string
	consumer      string
	stream        string
	startID       string
	handler       Handler
	batchSize     int64
	blockDuration time.Duration
}

type SubscriberConfig struct {
	Group    string
	Consumer string
	Stream   string
	// StartID is where a newly created group begins reading: "0" replays the
	// stream, "$" only sees entries added afterwards. Defaults to "0".
	StartID       string
	Handler       Handler
	BatchSize     int64
	BlockDuration time.Duration
}

func NewSubscriber(client *redis.Client, config SubscriberConfig) *Subscriber {
	if config.BatchSize == 0 {
		config.BatchSize = 10
	}
	if config.BlockDuration == 0 {
		config.BlockDuration = 5 * time.Second
	}
	if config.StartID == "" {
		config.StartID = "0"
	}

	return &Subscriber{
		client:        client,
		group:         config.Group,
		consumer:      config.Consumer,
		stream:        config.Stream,
		startID:       config.StartID,
		handler:       config.Handler,
		batchSize:     config.BatchSize,
		blockDuration: config.BlockDuration,
	}
}

// Start blocks, consuming the stream until ctx is cancelled. Entries this
// consumer left pending in an earlier run are retried before new ones.
func (s *Subscriber) Start(ctx context.Context) error {
	err := s.client.XGroupCreateMkStream(ctx, s.stream, s.group, s.startID).Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	fields := logger.Fields{"stream": s.stream, "group": s.group, "consumer": s.consumer}
	logger.Info("subscriber started", fields)

	if err := s.replayPending(ctx); err != nil && ctx.Err() == nil {
		logger.Error("pending replay failed", err, fields)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("subscriber stopping", fields)
			return ctx.Err()
		default:
			if err := s.readMessages(ctx); err != nil {
				if ctx.Err() != nil {
					continue
				}
				logger.Error("subscriber read failed", err, fields)
				time.Sleep(time.Second)
			}
		}
	}
}

// DestroyGroup removes the consumer group and its pending entries. A
// per-instance group is destroyed on graceful shutdown.
func (s *Subscriber) DestroyGroup(ctx context.Context) error {
	if err := s.client.XGroupDestroy(ctx, s.stream, s.group).Err(); err != nil {
		return fmt.Errorf("failed to destroy consumer group %s: %w", s.group, err)
	}
	logger.Info("consumer group destroyed", logger.Fields{"stream": s.stream, "group": s.group})
	return nil
}

// replayPending walks this consumer's pending entries once, oldest first.
// Entries that fail again stay pending.
func (s *Subscriber) replayPending(ctx context.Context) error {
	cursor := "0"
	for {
		messages, err := s.read(ctx, cursor, -1)
		if err != nil {
			return err
		}
		if len(messages) == 0 {
			return nil
		}
		if err := s.ack(ctx, s.handleMessages(ctx, messages)); err != nil {
			logger.Error("failed to ack replayed messages", err, nil)
		}
		cursor = messages[len(messages)-1].ID
	}
}

func (s *Subscriber) readMessages(ctx context.Context) error {
	messages, err := s.read(ctx, ">", s.blockDuration)
	if err != nil {
		return err
	}
	return s.ack(ctx, s.handleMessages(ctx, messages))
}

// read fetches one batch. A negative block returns at once.
func (s *Subscriber) read(ctx context.Context, id string, block time.Duration) ([]redis.XMessage, error) {
	streams, err := s.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    s.group,
		Consumer: s.consumer,
		Streams:  []string{s.stream, id},
		Count:    s.batchSize,
		Block:    block,
	}).Result()

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read from stream: %w", err)
	}

	var messages []redis.XMessage
	for _, stream := range streams {
		messages = append(messages, stream.Messages...)
	}
	return messages, nil
}

// handleMessages runs the handler over a batch and returns the IDs to ack.
// An entry that cannot be decoded (or was trimmed from the stream) is acked
// and dropped. A handler error leaves the entry pending.
func (s *Subscriber) handleMessages(ctx context.Context, messages []redis.XMessage) []string {
	ids := make([]string, 0, len(messages))
	for _, message := range messages {
		event, err := DecodeMessage(message.Values)
		if err != nil {
			logger.Error("dropping undecodable message", err, logger.Fields{"id": message.ID})
			ids = append(ids, message.ID)
			continue
		}

		if err := s.handler(ctx, event); err != nil {
			logger.Error("failed to process message", err, logger.Fields{"id": message.ID, "type": event.Type})
			continue
		}
		ids = append(ids, message.ID)
	}
	return ids
}

func (s *Subscriber) ack(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.client.XAck(ctx, s.stream, s.group, ids...).Err(); err != nil {
		return fmt.Errorf("failed to ack %d messages: %w", len(ids), err)
	}
	return nil
}
