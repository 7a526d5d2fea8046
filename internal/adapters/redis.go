package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gomoku_exe/internal/bootstrap"
)

const connectAttempts = 5

type AdapterRedis struct {
	client *redis.Client
	cfg    *bootstrap.Config
	log    *zap.SugaredLogger
}

func NewAdapterRedis(cfg *bootstrap.Config, log *zap.SugaredLogger) *AdapterRedis {
	return &AdapterRedis{
		cfg: cfg,
		log: log,
	}
}

// Init accepts either a redis:// URL or a bare host:port.
func (a *AdapterRedis) Init(ctx context.Context) error {
	opts := &redis.Options{Addr: a.cfg.RedisUrl}
	if strings.Contains(a.cfg.RedisUrl, "://") {
		parsed, err := redis.ParseURL(a.cfg.RedisUrl)
		if err != nil {
			return fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	}
	a.client = redis.NewClient(opts)

	err := retry.Do(
		func() error {
			ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return a.client.Ping(ctxPing).Err()
		},
		retry.Context(ctx),
		retry.Attempts(connectAttempts),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			a.log.Warnf("redis ping attempt %d failed: %v", n+1, err)
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		_ = a.client.Close()
		a.client = nil
		return fmt.Errorf("connect to redis: %w", err)
	}

	a.log.Infof("connected to redis at %s", opts.Addr)
	return nil
}

func (a *AdapterRedis) GetClient() *redis.Client {
	return a.client
}

func (a *AdapterRedis) Close(ctx context.Context) error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}
