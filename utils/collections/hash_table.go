package collections

import (
	"iter"

	"github.com/tuannh982/collections/utils/math"

	log "github.com/sirupsen/logrus"
)

// DefaultCapacity is the number of buckets a new HashTable starts with.
const DefaultCapacity = 100

type entry[K comparable, V any] struct {
	key   K
	value V
}

// HashTable is a separate-chaining hash table. Every bucket holds the entries
// whose keys currently map to its index, in insertion order.
//
// The table grows by doubling once the number of entries reaches the number
// of buckets (load factor 1.0). The threshold is simple rather than tuned.
//
// A HashTable is not safe for concurrent use, and must not be mutated while a
// traversal is in progress.
type HashTable[K comparable, V any] struct {
	buckets    [][]entry[K, V]
	count      int
	hash       HashFunc[K]
	generation uint64
	log        *log.Entry
}

type HashTableOption func(*hashTableConfig)

type hashTableConfig struct {
	capacity int
	logger   *log.Entry
}

// WithCapacity sets the initial number of buckets. Values below 1 are ignored.
func WithCapacity(capacity int) HashTableOption {
	return func(c *hashTableConfig) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

func WithLogger(logger *log.Entry) HashTableOption {
	return func(c *hashTableConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewHashTable[K comparable, V any](hash HashFunc[K], opts ...HashTableOption) *HashTable[K, V] {
	cfg := &hashTableConfig{
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.WithFields(log.Fields{"component": "hash_table"})
	}
	return &HashTable[K, V]{
		buckets: make([][]entry[K, V], cfg.capacity),
		count:   0,
		hash:    hash,
		log:     cfg.logger,
	}
}

func (t *HashTable[K, V]) indexOf(k K, capacity int) int {
	return math.FloorMod(t.hash(k), capacity)
}

// Insert stores v under k. An existing entry for k is updated in place.
func (t *HashTable[K, V]) Insert(k K, v V) {
	idx := t.indexOf(k, len(t.buckets))
	chain := t.buckets[idx]
	for i := range chain {
		if chain[i].key == k {
			chain[i].value = v
			return
		}
	}
	t.buckets[idx] = append(chain, entry[K, V]{key: k, value: v})
	t.count++
	if t.count >= len(t.buckets) {
		t.rehash()
	}
}

// Lookup returns the value stored under k and whether it was found.
func (t *HashTable[K, V]) Lookup(k K) (v V, found bool) {
	chain := t.buckets[t.indexOf(k, len(t.buckets))]
	for i := range chain {
		if chain[i].key == k {
			return chain[i].value, true
		}
	}
	return v, false
}

func (t *HashTable[K, V]) Contains(k K) bool {
	_, found := t.Lookup(k)
	return found
}

func (t *HashTable[K, V]) Count() int {
	return t.count
}

func (t *HashTable[K, V]) Capacity() int {
	return len(t.buckets)
}

func (t *HashTable[K, V]) rehash() {
	oldCapacity := len(t.buckets)
	newCapacity := oldCapacity * 2
	buckets := make([][]entry[K, V], newCapacity)
	for _, chain := range t.buckets {
		for _, e := range chain {
			idx := t.indexOf(e.key, newCapacity)
			buckets[idx] = append(buckets[idx], e)
		}
	}
	t.buckets = buckets
	t.generation++
	t.log.WithFields(log.Fields{
		"from":  oldCapacity,
		"to":    newCapacity,
		"count": t.count,
	}).Debug("rehashed")
}

// Traverse returns the entries in bucket order, and in insertion order within
// a bucket. Each range over the returned sequence starts again from bucket 0
// and visits every entry present at that moment exactly once.
//
// Inserting while ranging is a caller error. If such an insert rehashes the
// table, the traversal panics with ErrTraversalInvalidated.
func (t *HashTable[K, V]) Traverse() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		buckets, generation := t.buckets, t.generation
		for _, chain := range buckets {
			for _, e := range chain {
				if !yield(e.key, e.value) {
					return
				}
				if t.generation != generation {
					panic(ErrTraversalInvalidated)
				}
			}
		}
	}
}

func (t *HashTable[K, V]) Keys() []K {
	arr := make([]K, 0, t.count)
	for k := range t.Traverse() {
		arr = append(arr, k)
	}
	return arr
}

func (t *HashTable[K, V]) Values() []V {
	arr := make([]V, 0, t.count)
	for _, v := range t.Traverse() {
		arr = append(arr, v)
	}
	return arr
}

var _ Map[string, int] = (*HashTable[string, int])(nil)
