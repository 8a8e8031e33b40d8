package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 10
	defaultWindow      = 5 * time.Minute
)

// incrExpire atomically increments the counter and starts the window on the
// first hit.
var incrExpire = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// LoginThrottle counts login attempts per email+IP inside a fixed window.
// Key format: login:<email>:<ip>
type LoginThrottle struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// Non-positive limits fall back to the defaults.
func NewLoginThrottle(client *redis.Client, max int, window time.Duration) *LoginThrottle {
	if max <= 0 {
		max = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, max: max, window: window}
}

// Allow records one attempt and reports whether the caller is still under the
// limit. Redis being unreachable fails open: a broken throttle must not lock
// every user out.
func (t *LoginThrottle) Allow(ctx context.Context, email, ip string) bool {
	if t.client == nil {
		return true
	}

	count, err := incrExpire.Run(ctx, t.client, []string{t.key(email, ip)}, t.window.Milliseconds()).Int64()
	if err != nil {
		return true
	}
	return count <= int64(t.max)
}

func (t *LoginThrottle) key(email, ip string) string {
	return fmt.Sprintf("login:%s:%s", email, ip)
}
