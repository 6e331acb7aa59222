package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultJanitorInterval = 2 * time.Minute

var (
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by cache name and result.",
	}, []string{"cache", "result"})

	evictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries dropped because of capacity or expiry.",
	}, []string{"cache", "reason"})
)

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// LRUCache is a size bounded cache whose entries also expire after ttl.
type LRUCache struct {
	name     string
	capacity int
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	mu    sync.Mutex
	order *list.List
	items map[string]*list.Element
}

type Option func(*LRUCache)

func WithName(name string) Option {
	return func(c *LRUCache) { c.name = name }
}

func WithClock(now func() time.Time) Option {
	return func(c *LRUCache) { c.now = now }
}

func WithJanitorInterval(d time.Duration) Option {
	return func(c *LRUCache) { c.interval = d }
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...Option) *LRUCache {
	c := &LRUCache{
		name:     "default",
		capacity: capacity,
		ttl:      ttl,
		interval: defaultJanitorInterval,
		now:      time.Now,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		lookups.WithLabelValues(c.name, "miss").Inc()
		return nil, false
	}

	ent := el.Value.(*entry)
	if c.expired(ent) {
		c.remove(el, "expired")
		lookups.WithLabelValues(c.name, "miss").Inc()
		return nil, false
	}

	c.order.MoveToFront(el)
	lookups.WithLabelValues(c.name, "hit").Inc()
	return ent.value, true
}

// Set stores value under key and restarts its ttl.
func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.value, ent.expiresAt = value, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
	if c.order.Len() > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.remove(oldest, "capacity")
		}
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Start runs the janitor that drops expired entries until ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Cleanup()
			}
		}
	}()
	return nil
}

// Cleanup drops every expired entry.
func (c *LRUCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if c.expired(el.Value.(*entry)) {
			c.remove(el, "expired")
		}
		el = prev
	}
}

func (c *LRUCache) expired(ent *entry) bool {
	return !c.now().Before(ent.expiresAt)
}

func (c *LRUCache) remove(el *list.Element, reason string) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)
	evictions.WithLabelValues(c.name, reason).Inc()
}
