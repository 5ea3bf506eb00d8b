package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultLockout     = 15 * time.Minute
)

// INCR and start the window on the first failure only, so the lockout
// expires a fixed time after the first miss.
const recordFailureScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`

type throttleClient interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// LoginThrottle counts failed logins per email in Redis.
// Key format: login:fail:<email>
type LoginThrottle struct {
	client      throttleClient
	maxAttempts int
	lockout     time.Duration
}

// NewLoginThrottle locks an email for lockout once maxAttempts failures
// accumulate inside the window.
func NewLoginThrottle(client *redis.Client, maxAttempts int, lockout time.Duration) *LoginThrottle {
	return newLoginThrottle(client, maxAttempts, lockout)
}

func newLoginThrottle(client throttleClient, maxAttempts int, lockout time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if lockout <= 0 {
		lockout = defaultLockout
	}
	return &LoginThrottle{client: client, maxAttempts: maxAttempts, lockout: lockout}
}

// Locked reports whether the email has exhausted its attempts.
func (t *LoginThrottle) Locked(ctx context.Context, email string) (bool, error) {
	val, err := t.client.Get(ctx, t.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxAttempts, nil
}

// RecordFailure increments the failure counter.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	err := t.client.Eval(ctx, recordFailureScript, []string{t.key(email)}, t.lockout.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	if err := t.client.Del(ctx, t.key(email)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

func (t *LoginThrottle) key(email string) string {
	return "login:fail:" + email
}
