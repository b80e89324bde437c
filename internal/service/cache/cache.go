// Package cache provides the sharded TTL/LRU store that holds mounted screen
// sessions and replayable idempotent responses.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/food-details-service/internal/metrics"
)

// Eviction reasons passed to an EvictFunc.
const (
	ReasonExpired  = "expired"
	ReasonCapacity = "capacity"
	ReasonRemoved  = "removed"
)

// Cache defines the store operations used by the session manager.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Invalidate(key string) bool
	Len() int
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// EvictFunc is called after an entry leaves the cache, outside any cache lock.
type EvictFunc[V any] func(key string, value V, reason string)

// ShardedCache distributes entries across shards to reduce lock contention.
// Reads slide the entry's expiry forward.
type ShardedCache[V any] struct {
	shards    []*ttlCache[V]
	shardMask uint32
}

// NewShardedCache creates a cache with the given total capacity, idle TTL and
// shard count. numShards is rounded up to a power of 2; zero means 16. name
// labels the cache in metrics. Stop must be called to release the sweepers.
func NewShardedCache[V any](name string, capacity int, ttl time.Duration, numShards int, onEvict EvictFunc[V]) *ShardedCache[V] {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	numShards = n

	perShardCapacity := capacity / numShards
	if perShardCapacity < 1 {
		perShardCapacity = 1
	}

	shards := make([]*ttlCache[V], numShards)
	for i := range shards {
		shards[i] = newTTLCache(name, perShardCapacity, ttl, onEvict)
	}

	return &ShardedCache[V]{
		shards:    shards,
		shardMask: uint32(numShards - 1),
	}
}

func (sc *ShardedCache[V]) getShard(key string) *ttlCache[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()&sc.shardMask]
}

// Get retrieves a live value and refreshes its expiry.
func (sc *ShardedCache[V]) Get(key string) (V, bool) {
	return sc.getShard(key).Get(key)
}

// Set stores a value.
func (sc *ShardedCache[V]) Set(key string, value V) {
	sc.getShard(key).Set(key, value)
}

// Invalidate removes a key and reports whether it was present.
func (sc *ShardedCache[V]) Invalidate(key string) bool {
	return sc.getShard(key).Invalidate(key)
}

// Len returns the number of stored entries, expired ones included until swept.
func (sc *ShardedCache[V]) Len() int {
	total := 0
	for _, shard := range sc.shards {
		total += shard.Len()
	}
	return total
}

// Clear removes all entries from all shards.
func (sc *ShardedCache[V]) Clear() {
	for _, shard := range sc.shards {
		shard.Clear()
	}
}

// Stop shuts down the background sweepers.
func (sc *ShardedCache[V]) Stop() {
	for _, shard := range sc.shards {
		shard.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (sc *ShardedCache[V]) Metrics() Metrics {
	var total Metrics
	for _, shard := range sc.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is one LRU shard with idle expiry.
type ttlCache[V any] struct {
	mu        sync.Mutex
	name      string
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry[V]
	head      *cacheEntry[V]
	tail      *cacheEntry[V]
	onEvict   EvictFunc[V]
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *cacheEntry[V]
	next      *cacheEntry[V]
}

type evicted[V any] struct {
	key    string
	value  V
	reason string
}

func newTTLCache[V any](name string, capacity int, ttl time.Duration, onEvict EvictFunc[V]) *ttlCache[V] {
	c := &ttlCache[V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry[V], capacity),
		onEvict:  onEvict,
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Stop shuts down the sweeper. Safe to call more than once.
func (c *ttlCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *ttlCache[V]) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

func (c *ttlCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *ttlCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	entry, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		c.record("get", "miss")
		return zero, false
	}

	current := time.Now()
	if current.After(entry.expiresAt) {
		c.removeEntry(entry)
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		atomic.AddInt64(&c.evictions, 1)
		c.record("get", "expired")
		c.notify([]evicted[V]{{key: entry.key, value: entry.value, reason: ReasonExpired}})
		return zero, false
	}

	entry.expiresAt = current.Add(c.ttl)
	c.moveToFront(entry)
	value := entry.value
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	c.record("get", "hit")
	return value, true
}

// Set adds or replaces a value. When the shard is full the least recently
// used entry is evicted.
func (c *ttlCache[V]) Set(key string, value V) {
	var out []evicted[V]

	c.mu.Lock()
	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		c.mu.Unlock()
		c.record("set", "update")
		return
	}

	entry := &cacheEntry[V]{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity && c.tail != nil {
		tail := c.tail
		c.removeEntry(tail)
		atomic.AddInt64(&c.evictions, 1)
		out = append(out, evicted[V]{key: tail.key, value: tail.value, reason: ReasonCapacity})
	}
	c.mu.Unlock()

	c.record("set", "success")
	if len(out) > 0 {
		c.record("evict", ReasonCapacity)
	}
	c.notify(out)
}

func (c *ttlCache[V]) Invalidate(key string) bool {
	c.mu.Lock()
	entry, ok := c.items[key]
	if ok {
		c.removeEntry(entry)
	}
	c.mu.Unlock()

	if !ok {
		return false
	}
	c.record("invalidate", "success")
	c.notify([]evicted[V]{{key: entry.key, value: entry.value, reason: ReasonRemoved}})
	return true
}

func (c *ttlCache[V]) Clear() {
	c.mu.Lock()
	out := make([]evicted[V], 0, len(c.items))
	for _, entry := range c.items {
		out = append(out, evicted[V]{key: entry.key, value: entry.value, reason: ReasonRemoved})
	}
	c.items = make(map[string]*cacheEntry[V], c.capacity)
	c.head = nil
	c.tail = nil
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)
	c.mu.Unlock()

	c.record("clear", "success")
	c.notify(out)
}

func (c *ttlCache[V]) startCleanup() {
	interval := c.ttl / 2
	if interval <= 0 || interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes all expired entries.
func (c *ttlCache[V]) cleanup() {
	var out []evicted[V]

	c.mu.Lock()
	current := time.Now()
	for _, entry := range c.items {
		if current.After(entry.expiresAt) {
			c.removeEntry(entry)
			out = append(out, evicted[V]{key: entry.key, value: entry.value, reason: ReasonExpired})
		}
	}
	atomic.AddInt64(&c.evictions, int64(len(out)))
	c.mu.Unlock()

	for range out {
		c.record("evict", ReasonExpired)
	}
	c.notify(out)
}

func (c *ttlCache[V]) record(operation, result string) {
	metrics.RecordCacheOperation(c.name, operation, result)
}

func (c *ttlCache[V]) notify(out []evicted[V]) {
	if c.onEvict == nil {
		return
	}
	for _, e := range out {
		c.onEvict(e.key, e.value, e.reason)
	}
}

func (c *ttlCache[V]) removeEntry(entry *cacheEntry[V]) {
	delete(c.items, entry.key)
	c.remove(entry)
}

func (c *ttlCache[V]) moveToFront(entry *cacheEntry[V]) {
	if entry == c.head {
		return
	}
	c.remove(entry)
	c.addToFront(entry)
}

func (c *ttlCache[V]) addToFront(entry *cacheEntry[V]) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ttlCache[V]) remove(entry *cacheEntry[V]) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}
