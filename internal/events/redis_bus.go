package events

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/config"
	"backoffice/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisOptions configures a RedisBus.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// Channel is the Redis channel messages travel on.
	Channel string
}

// NewRedisOptions builds bus options from the application config.
func NewRedisOptions(cfg *config.Config) RedisOptions {
	return RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Channel:  cfg.Redis.Channel,
	}
}

// RedisBus carries messages between processes over Redis pub/sub so that
// every API instance can deliver them to its own subscribers.
type RedisBus struct {
	client  *redis.Client
	channel string
}

// NewRedisBus connects to Redis and verifies the connection.
func NewRedisBus(ctx context.Context, opts RedisOptions) (*RedisBus, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &RedisBus{
		client:  client,
		channel: opts.Channel,
	}, nil
}

// Publish sends msg to every process listening on the bus.
func (b *RedisBus) Publish(ctx context.Context, msg Message) error {
	if err := b.client.Publish(ctx, b.channel, MarshalMessage(msg)).Err(); err != nil {
		return fmt.Errorf("could not publish event: %w", err)
	}

	return nil
}

// StartForwarder subscribes to the bus and calls onMsg for every received
// message until ctx is done. It returns once the subscription is active.
func (b *RedisBus) StartForwarder(ctx context.Context, onMsg func(context.Context, Message)) error {
	sub := b.client.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return fmt.Errorf("could not subscribe to %s: %w", b.channel, err)
	}

	go func() {
		defer func() { _ = sub.Close() }()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok {
					return
				}
				msg, err := UnmarshalMessage([]byte(m.Payload))
				if err != nil {
					logger.Warn(ctx, "ignoring malformed event from redis", zap.Error(err))

					continue
				}
				onMsg(ctx, msg)
			}
		}
	}()

	return nil
}

// Close releases the Redis connection.
func (b *RedisBus) Close() error {
	if err := b.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
