package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// MemoryStore is an ordered in-process map. Values come back in ascending
// key order. Safe for concurrent use; every method is atomic on its own.
type MemoryStore[K cmp.Ordered, V any] struct {
	mu     sync.RWMutex
	keys   []K
	values map[K]V
}

func NewMemoryStore[K cmp.Ordered, V any]() *MemoryStore[K, V] {
	return &MemoryStore[K, V]{
		values: make(map[K]V),
	}
}

func (s *MemoryStore[K, V]) Get(_ context.Context, key K) (V, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore[K, V]) Insert(_ context.Context, key K, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		i, _ := slices.BinarySearch(s.keys, key)
		s.keys = slices.Insert(s.keys, i, key)
	}
	s.values[key] = value

	return nil
}

func (s *MemoryStore[K, V]) Values(_ context.Context) ([]V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]V, 0, len(s.keys))
	for _, k := range s.keys {
		res = append(res, s.values[k])
	}

	return res, nil
}

func (s *MemoryStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}
