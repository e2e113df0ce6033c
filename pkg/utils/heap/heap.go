package heap

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

const (
	ERR_INVALID_CAPACITY = "heap: capacity must be greater than zero"
	ERR_INVALID_ORDER    = "heap: unknown order"
	ERR_HEAP_FULL        = "heap: capacity exceeded"
	ERR_HEAP_EMPTY       = "heap: no elements"
)

var (
	ErrInvalidCapacity = errors.New(ERR_INVALID_CAPACITY)
	ErrInvalidOrder    = errors.New(ERR_INVALID_ORDER)
	ErrHeapFull        = errors.New(ERR_HEAP_FULL)
	ErrHeapEmpty       = errors.New(ERR_HEAP_EMPTY)
)

// BinaryHeap is a fixed-capacity binary heap stored in a pre-allocated slice.
// The root is the maximum or the minimum element depending on its Order.
// It is not safe for concurrent use, see SyncHeap.
type BinaryHeap[T constraints.Ordered] struct {
	data   []T
	count  int
	order  Order
	before func(a, b T) bool
}

// New creates an empty heap holding at most capacity elements.
func New[T constraints.Ordered](capacity int, order Order) (*BinaryHeap[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	before, err := comparator[T](order)
	if err != nil {
		return nil, err
	}

	return &BinaryHeap[T]{
		data:   make([]T, capacity),
		order:  order,
		before: before,
	}, nil
}

// NewMaxHeap creates an empty heap whose root is its largest element.
func NewMaxHeap[T constraints.Ordered](capacity int) (*BinaryHeap[T], error) {
	return New[T](capacity, MaxOrder)
}

// NewMinHeap creates an empty heap whose root is its smallest element.
func NewMinHeap[T constraints.Ordered](capacity int) (*BinaryHeap[T], error) {
	return New[T](capacity, MinOrder)
}

// FromSlice builds a heap from values in O(n). values is copied, never reordered.
// Returns ErrHeapFull if values does not fit in capacity.
func FromSlice[T constraints.Ordered](capacity int, order Order, values []T) (*BinaryHeap[T], error) {
	h, err := New[T](capacity, order)
	if err != nil {
		return nil, err
	}
	if len(values) > capacity {
		return nil, ErrHeapFull
	}

	h.count = copy(h.data, values)
	for i := h.count/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h, nil
}

func (h *BinaryHeap[T]) Size() int     { return h.count }
func (h *BinaryHeap[T]) Capacity() int { return len(h.data) }
func (h *BinaryHeap[T]) Order() Order  { return h.order }
func (h *BinaryHeap[T]) IsEmpty() bool { return h.count == 0 }
func (h *BinaryHeap[T]) IsFull() bool  { return h.count == len(h.data) }

// Insert adds v to the heap. A full heap is left unchanged and ErrHeapFull is returned.
func (h *BinaryHeap[T]) Insert(v T) error {
	if h.IsFull() {
		return ErrHeapFull
	}

	h.data[h.count] = v
	h.count++
	h.up(h.count - 1)
	return nil
}

// Extract removes and returns the root.
func (h *BinaryHeap[T]) Extract() (T, error) {
	var zero T
	if h.count == 0 {
		return zero, ErrHeapEmpty
	}

	v := h.data[0]
	h.count--
	h.data[0] = h.data[h.count]
	h.data[h.count] = zero
	if h.count > 1 {
		h.down(0)
	}
	return v, nil
}

// Peek returns the root without removing it.
func (h *BinaryHeap[T]) Peek() (T, error) {
	if h.count == 0 {
		var zero T
		return zero, ErrHeapEmpty
	}
	return h.data[0], nil
}

// Describe returns a copy of the live elements in storage order, which is a
// level-order walk of the tree and not sorted order.
func (h *BinaryHeap[T]) Describe() ([]T, error) {
	if h.count == 0 {
		return nil, ErrHeapEmpty
	}
	out := make([]T, h.count)
	copy(out, h.data[:h.count])
	return out, nil
}

// String renders the heap as "[7,6,3,1,4]", or "no elements" when empty.
func (h *BinaryHeap[T]) String() string {
	if h.count == 0 {
		return "no elements"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < h.count; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(fmt.Sprint(h.data[i]))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Reset drops all elements. Capacity and order are kept.
func (h *BinaryHeap[T]) Reset() {
	clear(h.data[:h.count])
	h.count = 0
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (i * 2) + 1 }
func right(i int) int  { return left(i) + 1 }

func (h *BinaryHeap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *BinaryHeap[T]) up(j int) {
	for j > 0 {
		i := parent(j)
		if !h.before(h.data[j], h.data[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *BinaryHeap[T]) down(i int) {
	n := h.count
	for {
		j := left(i)
		if j >= n {
			break
		}
		// descend into the more extreme child, left on ties
		if r := right(i); r < n && h.before(h.data[r], h.data[j]) {
			j = r
		}
		if !h.before(h.data[j], h.data[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
}
