// Package memo provides a bounded, string-keyed memo table for pure functions.
//
// A Table never grows past its configured size: each shard keeps two
// generations of entries, and when the head generation fills up the
// generations rotate and the older one is dropped wholesale.
package memo

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const maxShards = 16

type generation[V any] map[string]V

type shard[V any] struct {
	mu      sync.RWMutex
	gens    [2]generation[V]
	headIdx int
	maxSize int
}

func (s *shard[V]) load(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.gens[s.headIdx][key]; ok {
		return v, true
	}
	v, ok := s.gens[1-s.headIdx][key]
	return v, ok
}

func (s *shard[V]) store(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	head := s.gens[s.headIdx]
	if _, ok := head[key]; !ok && len(head) >= s.maxSize {
		s.headIdx = 1 - s.headIdx
		s.gens[s.headIdx] = make(generation[V], s.maxSize)
	}
	s.gens[s.headIdx][key] = value
}

type Table[V any] struct {
	shards []*shard[V]
}

// New returns a table holding at most maxSize entries per generation.
// It panics if maxSize is 0.
func New[V any](maxSize uint32) *Table[V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}

	n := maxShards
	if int(maxSize) < n {
		n = int(maxSize)
	}
	per := int(maxSize) / n

	t := &Table[V]{shards: make([]*shard[V], n)}
	for i := range t.shards {
		t.shards[i] = &shard[V]{
			gens:    [2]generation[V]{make(generation[V], per), make(generation[V], per)},
			maxSize: per,
		}
	}
	return t
}

func (t *Table[V]) shardFor(key string) *shard[V] {
	if len(t.shards) == 1 {
		return t.shards[0]
	}
	return t.shards[xxhash.Sum64String(key)%uint64(len(t.shards))]
}

func (t *Table[V]) Load(key string) (V, bool) {
	return t.shardFor(key).load(key)
}

func (t *Table[V]) Store(key string, value V) {
	t.shardFor(key).store(key, value)
}

// Len reports the number of live entries across both generations.
func (t *Table[V]) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.RLock()
		n += len(s.gens[0]) + len(s.gens[1])
		s.mu.RUnlock()
	}
	return n
}

// Tableize memoizes fn by its argument. fn must be pure.
func Tableize[V any](fn func(string) V, maxSize uint32) func(string) V {
	table := New[V](maxSize)
	return func(key string) V {
		v, ok := table.Load(key)
		if !ok {
			v = fn(key)
			table.Store(key, v)
		}
		return v
	}
}
