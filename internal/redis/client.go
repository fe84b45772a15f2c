package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options selects the Redis server backing the account cache and stream.
type Options struct {
	Addr     string
	Password string
	DB       int
	// InstanceID names this replica's connections in CLIENT LIST.
	InstanceID string
}

func (o Options) clientOptions() *redis.Options {
	opts := &redis.Options{
		Addr:         o.Addr,
		Password:     o.Password,
		DB:           o.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	}
	if o.InstanceID != "" {
		opts.ClientName = "account-grpc:" + o.InstanceID
	}
	return opts
}

type Client struct {
	*redis.Client
}

// NewClient dials Redis and fails fast when the server does not answer PING.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	rdb := redis.NewClient(opts.clientOptions())

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return &Client{Client: rdb}, nil
}
