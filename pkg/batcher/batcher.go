// Package batcher buffers items and hands them to a flush callback in groups.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop has been called or the context
// passed to Start is done.
var ErrStopped = errors.New("batcher: stopped")

const (
	defaultFlushSize     = 100
	defaultFlushInterval = 5 * time.Second
	defaultFlushTimeout  = 10 * time.Second
)

// Config tunes a Batcher. Zero values select defaults; RPS 0 disables rate limiting.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushTimeout  time.Duration
	RPS           int
}

func (c Config) withDefaults() Config {
	if c.FlushSize <= 0 {
		c.FlushSize = defaultFlushSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = defaultFlushInterval
	}
	if c.FlushTimeout <= 0 {
		c.FlushTimeout = defaultFlushTimeout
	}
	return c
}

// Batcher buffers items and flushes them by size, by interval and on shutdown.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	cfg           Config
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
	// adding is held by Add while it may send, so the loop can wait out
	// in-flight sends before its final drain.
	adding sync.RWMutex
}

// New constructs a Batcher. The callback receives a slice it may keep.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, cfg Config) *Batcher[T] {
	cfg = cfg.withDefaults()
	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, cfg.FlushSize*2),
		cfg:           cfg,
		rl:            rl,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit. It is safe to
// call more than once.
func (b *Batcher[T]) Stop() {
	b.closeStop()
	b.wg.Wait()
}

func (b *Batcher[T]) closeStop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
}

// Add queues an item, blocking while the buffer is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	b.adding.RLock()
	defer b.adding.RUnlock()

	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		batch := make([]T, len(buf))
		copy(batch, buf)
		buf = buf[:0]

		b.rl.Take()
		if err := b.flushCallback(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Error(err), zap.Int("size", len(batch)))
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}

	// the final flush outlives ctx so a shutdown does not drop queued items
	drain := func() {
		b.closeStop()
		//nolint:staticcheck // empty critical section waits out in-flight Add calls
		b.adding.Lock()
		b.adding.Unlock()
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
			default:
				flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.cfg.FlushTimeout)
				flush(flushCtx)
				cancel()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
