package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/stayforge/hotel-booking-service/pkg/log"
)

const defaultConnectionTimeout = 20 * time.Second

type Config struct {
	Address           string
	Password          string
	DB                int
	ConnectionTimeout time.Duration
}

type Connection interface {
	Client() *redis.Client
	Close(ctx context.Context)
}

type connection struct {
	client *redis.Client
	logger log.Logger
}

func NewConnection(ctx context.Context, config *Config, logger log.Logger) (Connection, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Address,
		Password: config.Password,
		DB:       config.DB,
	})

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err := backoff.Retry(func() error {
		return client.Ping(ctx).Err()
	}, backoff.WithContext(eb, ctx))
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("open redis connection: %w", err)
	}

	return &connection{
		client: client,
		logger: logger,
	}, nil
}

func (c *connection) Client() *redis.Client {
	return c.client
}

func (c *connection) Close(ctx context.Context) {
	err := c.client.Close()
	if err != nil {
		c.logger.WithError(err).Error(ctx, "failed to close redis connection")
	}
}
