package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"kassaBack/internal/models"
)

const figuresTTL = 10 * time.Minute

// FiguresCache holds computed company figures keyed by as-of date. Any
// investment write bumps a generation counter, so every cached entry goes
// stale at once without enumerating keys.
type FiguresCache interface {
	Get(ctx context.Context, asOf models.Date) (models.Figures, bool)
	Set(ctx context.Context, asOf models.Date, fig models.Figures) error
	Invalidate(ctx context.Context) error
}

type RedisFiguresCache struct {
	client *redis.Client
}

func NewRedisFiguresCache(addr string) *RedisFiguresCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisFiguresCache{client: rdb}
}

func (c *RedisFiguresCache) key(ctx context.Context, asOf models.Date) string {
	gen, err := c.client.Get(ctx, "figures:gen").Result()
	if err != nil {
		gen = "0"
	}
	return fmt.Sprintf("figures:company:%s:%s", gen, asOf)
}

func (c *RedisFiguresCache) Get(ctx context.Context, asOf models.Date) (models.Figures, bool) {
	val, err := c.client.Get(ctx, c.key(ctx, asOf)).Result()
	if err != nil {
		return models.Figures{}, false
	}
	var fig models.Figures
	if err := json.Unmarshal([]byte(val), &fig); err != nil {
		return models.Figures{}, false
	}
	return fig, true
}

func (c *RedisFiguresCache) Set(ctx context.Context, asOf models.Date, fig models.Figures) error {
	raw, err := json.Marshal(fig)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(ctx, asOf), raw, figuresTTL).Err()
}

func (c *RedisFiguresCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, "figures:gen").Err()
}

// MockFiguresCache is an in-memory stand-in used in tests and when no Redis
// address is configured.
type MockFiguresCache struct {
	mu          sync.Mutex
	generation  int
	entries     map[string]models.Figures
	Invalidated int
}

func NewMockFiguresCache() *MockFiguresCache {
	return &MockFiguresCache{entries: make(map[string]models.Figures)}
}

func (c *MockFiguresCache) key(asOf models.Date) string {
	return strconv.Itoa(c.generation) + ":" + asOf.String()
}

func (c *MockFiguresCache) Get(_ context.Context, asOf models.Date) (models.Figures, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fig, ok := c.entries[c.key(asOf)]
	return fig, ok
}

func (c *MockFiguresCache) Set(_ context.Context, asOf models.Date, fig models.Figures) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[c.key(asOf)] = fig
	return nil
}

func (c *MockFiguresCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.Invalidated++
	return nil
}
