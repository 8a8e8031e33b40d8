// Package redis provides the client behind the login throttle.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 3 * time.Second

// Config describes the Redis instance backing the login throttle.
type Config struct {
	Addr     string
	Password string
	DB       int

	// PingTimeout bounds the startup connectivity check.
	PingTimeout time.Duration
}

// Connect opens a client and verifies the instance answers before the
// throttle starts counting against it. The throttle itself fails open, so
// surfacing an unreachable Redis at startup is the only hard check.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
