package cache

import (
	"hash/fnv"
	"time"
)

// Sharded spreads entries across several TTL caches to reduce lock contention.
type Sharded[V any] struct {
	shards    []*TTL[V]
	shardMask uint32
}

// NewSharded creates a sharded cache with the given total capacity and TTL.
// numShards is rounded up to a power of 2; zero or negative means 16.
func NewSharded[V any](name string, capacity int, ttl time.Duration, numShards int) *Sharded[V] {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*TTL[V], n)
	for i := range shards {
		shards[i] = NewTTL[V](name, perShard, ttl)
	}

	return &Sharded[V]{
		shards:    shards,
		shardMask: uint32(n - 1),
	}
}

func (sc *Sharded[V]) shard(key string) *TTL[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()&sc.shardMask]
}

// Get retrieves a value from the owning shard.
func (sc *Sharded[V]) Get(key string) (V, bool) {
	return sc.shard(key).Get(key)
}

// Set stores a value in the owning shard.
func (sc *Sharded[V]) Set(key string, value V) {
	sc.shard(key).Set(key, value)
}

// Invalidate removes a key from the owning shard.
func (sc *Sharded[V]) Invalidate(key string) {
	sc.shard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (sc *Sharded[V]) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop shuts down all shards.
func (sc *Sharded[V]) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Len returns the number of stored entries across shards.
func (sc *Sharded[V]) Len() int {
	total := 0
	for _, s := range sc.shards {
		total += s.Len()
	}
	return total
}

// Metrics returns aggregated metrics from all shards.
func (sc *Sharded[V]) Metrics() Metrics {
	var total Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// NumShards returns the number of shards.
func (sc *Sharded[V]) NumShards() int {
	return len(sc.shards)
}
