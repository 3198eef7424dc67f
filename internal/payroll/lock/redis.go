// Package lock provides a cross-process run lease in Redis.
package lock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultKey = "utxopayroll:run-lock"
	DefaultTTL = 10 * time.Minute

	pingTimeout = 2 * time.Second
)

// ErrNotHeld is returned by Unlock when this instance does not own the lease.
var ErrNotHeld = errors.New("lock: lease not held")

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type Client interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

type Config struct {
	Addr     string
	Password string
	DB       int
	Key      string
	TTL      time.Duration
}

// RedisLock is a SET NX PX lease. The value is a random token so that only the
// holder can release it.
type RedisLock struct {
	client   Client
	key      string
	ttl      time.Duration
	newToken func() string

	mu    sync.Mutex
	token string
}

// Dial connects to Redis and returns a lock over that connection.
func Dial(ctx context.Context, cfg Config) (*RedisLock, *redis.Client, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, nil, errors.New("redis addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	l, err := New(client, cfg.Key, cfg.TTL)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return l, client, nil
}

func New(client Client, key string, ttl time.Duration) (*RedisLock, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if key == "" {
		key = DefaultKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisLock{client: client, key: key, ttl: ttl, newToken: uuid.NewString}, nil
}

// TryLock takes the lease if nobody holds it.
func (l *RedisLock) TryLock(ctx context.Context) (bool, error) {
	token := l.newToken()
	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis set nx %s: %w", l.key, err)
	}
	if !ok {
		return false, nil
	}
	l.mu.Lock()
	l.token = token
	l.mu.Unlock()
	return true, nil
}

// Unlock releases the lease if this instance still holds it.
func (l *RedisLock) Unlock(ctx context.Context) error {
	l.mu.Lock()
	token := l.token
	l.token = ""
	l.mu.Unlock()

	if token == "" {
		return ErrNotHeld
	}
	deleted, err := releaseScript.Run(ctx, l.client, []string{l.key}, token).Int()
	if err != nil {
		return fmt.Errorf("redis release %s: %w", l.key, err)
	}
	if deleted == 0 {
		// the lease expired and may now belong to someone else
		return ErrNotHeld
	}
	return nil
}
