// Package hashtable implements a fixed-capacity hash table that resolves
// collisions by separate chaining: a bucket array of singly-linked entry
// chains, addressed by a pluggable string hash reduced modulo the capacity.
//
// The table never resizes and is not safe for concurrent use.
package hashtable

import "fmt"

// Table maps string keys to values of type V across a fixed number of
// buckets. The capacity is set at construction and never changes, so a given
// key always lands in the same bucket for the table's lifetime.
type Table[V any] struct {
	buckets []chain[V]
	hash    HashFunc
	size    int
}

// TableStats describes the bucket occupancy of a Table at a point in time.
type TableStats struct {
	Capacity    int
	Entries     int
	UsedBuckets int
	MaxChainLen int
	LoadFactor  float64
}

// New creates a Table with the given number of buckets, hashing keys with
// PositionHash. Capacity must be positive.
func New[V any](capacity int) (*Table[V], error) {
	return NewWithHash[V](capacity, PositionHash)
}

// NewWithHash creates a Table that hashes keys with the given function
// instead of PositionHash. The function must be deterministic; it does not
// need to be collision-free.
func NewWithHash[V any](capacity int, hash HashFunc) (*Table[V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("hashtable: capacity must be positive, got %d", capacity)
	}
	if hash == nil {
		return nil, fmt.Errorf("hashtable: hash function must not be nil")
	}

	// Each slot holds its own chain value. Sharing one chain across slots
	// would alias every bucket to the same list.
	return &Table[V]{
		buckets: make([]chain[V], capacity),
		hash:    hash,
	}, nil
}

// indexOf reduces the key's hash into [0, capacity). The hash is unsigned
// and the capacity positive, so the result is always in range.
func (t *Table[V]) indexOf(key string) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// Put stores value under key, replacing the previous value if the key is
// already present. It never fails: chains grow as needed, so there is no
// table-full condition.
func (t *Table[V]) Put(key string, value V) {
	if t.buckets[t.indexOf(key)].insertOrUpdate(key, value) {
		t.size++
	}
}

// Get returns the value stored under key, or (zero, false) if the key is
// absent.
func (t *Table[V]) Get(key string) (V, bool) {
	return t.buckets[t.indexOf(key)].find(key)
}

// Delete removes key and returns the value it held, or (zero, false) if the
// key was absent.
func (t *Table[V]) Delete(key string) (V, bool) {
	value, removed := t.buckets[t.indexOf(key)].remove(key)
	if removed {
		t.size--
	}
	return value, removed
}

// Exists reports whether key is present.
func (t *Table[V]) Exists(key string) bool {
	_, ok := t.buckets[t.indexOf(key)].find(key)
	return ok
}

// Len returns the number of stored entries.
func (t *Table[V]) Len() int {
	return t.size
}

// Capacity returns the number of buckets.
func (t *Table[V]) Capacity() int {
	return len(t.buckets)
}

// LoadFactor returns the ratio of stored entries to buckets.
func (t *Table[V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Keys returns all stored keys, grouped by bucket in chain order.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.size)
	for i := range t.buckets {
		t.buckets[i].each(func(key string, _ V) bool {
			keys = append(keys, key)
			return true
		})
	}
	return keys
}

// Values returns all stored values, grouped by bucket in chain order.
func (t *Table[V]) Values() []V {
	values := make([]V, 0, t.size)
	for i := range t.buckets {
		t.buckets[i].each(func(_ string, value V) bool {
			values = append(values, value)
			return true
		})
	}
	return values
}

// Entries returns a copy of the table's contents as a map.
func (t *Table[V]) Entries() map[string]V {
	entries := make(map[string]V, t.size)
	for i := range t.buckets {
		t.buckets[i].each(func(key string, value V) bool {
			entries[key] = value
			return true
		})
	}
	return entries
}

// Clear removes every entry. Capacity and hash function are unchanged.
func (t *Table[V]) Clear() {
	for i := range t.buckets {
		t.buckets[i] = chain[V]{}
	}
	t.size = 0
}

// Stats returns the current bucket occupancy.
func (t *Table[V]) Stats() TableStats {
	stats := TableStats{
		Capacity:   len(t.buckets),
		Entries:    t.size,
		LoadFactor: float64(t.size) / float64(len(t.buckets)),
	}
	for i := range t.buckets {
		if t.buckets[i].isEmpty() {
			continue
		}
		stats.UsedBuckets++
		if n := t.buckets[i].len(); n > stats.MaxChainLen {
			stats.MaxChainLen = n
		}
	}
	return stats
}
