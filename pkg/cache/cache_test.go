package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/pkg/cache"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *cache.LRUCache, clock *fakeClock)
	}{
		{
			name:     "set and get within ttl",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *cache.LRUCache, clock *fakeClock) {
				c.Set("a", []byte("accepted"))
				clock.Advance(59 * time.Second)

				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "accepted", string(v))
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *cache.LRUCache, clock *fakeClock) {
				c.Set("a", []byte("rejected"))
				clock.Advance(time.Minute)

				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Zero(t, c.Len())
			},
		},
		{
			name:     "evicts least recently used over capacity",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *cache.LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok, "b should be evicted")
				_, ok = c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, 2, c.Len())
			},
		},
		{
			name:     "set resets ttl",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *cache.LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.Advance(40 * time.Second)
				c.Set("a", []byte("2"))
				clock.Advance(40 * time.Second)

				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "2", string(v))
			},
		},
		{
			name:     "delete",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *cache.LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				c.Delete("a")
				c.Delete("missing")

				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "cleanup drops only expired entries",
			capacity: 3,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *cache.LRUCache, clock *fakeClock) {
				c.Set("old", []byte("1"))
				clock.Advance(30 * time.Second)
				c.Set("new", []byte("2"))
				clock.Advance(31 * time.Second)

				c.Cleanup()

				assert.Equal(t, 1, c.Len())
				_, ok := c.Get("new")
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := cache.NewLRUCache(tt.capacity, tt.ttl, cache.WithName("test"), cache.WithClock(clock.Now))
			tt.actions(t, c, clock)
		})
	}
}

func TestLRUCache_Janitor(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := cache.NewLRUCache(10, time.Minute,
		cache.WithClock(clock.Now),
		cache.WithJanitorInterval(5*time.Millisecond),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, c.Start(ctx))

	c.Set("a", []byte("1"))
	clock.Advance(2 * time.Minute)

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
}
