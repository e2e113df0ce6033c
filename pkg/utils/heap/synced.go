package heap

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// SyncHeap guards a BinaryHeap with a single mutex.
type SyncHeap[T constraints.Ordered] struct {
	mu   sync.Mutex
	heap *BinaryHeap[T]
}

func NewSyncHeap[T constraints.Ordered](h *BinaryHeap[T]) *SyncHeap[T] {
	return &SyncHeap[T]{heap: h}
}

func (s *SyncHeap[T]) Insert(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Insert(v)
}

func (s *SyncHeap[T]) Extract() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Extract()
}

func (s *SyncHeap[T]) Peek() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Peek()
}

func (s *SyncHeap[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Size()
}

func (s *SyncHeap[T]) Capacity() int { return s.heap.Capacity() }
func (s *SyncHeap[T]) Order() Order  { return s.heap.Order() }

func (s *SyncHeap[T]) Describe() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Describe()
}

func (s *SyncHeap[T]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.String()
}

func (s *SyncHeap[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heap.Reset()
}
