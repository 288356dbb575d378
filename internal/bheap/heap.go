// Package bheap implements a value-based binary heap with a caller-supplied
// ordering, used as the bounded retention structure for k-best selection.
package bheap

// LessFunc reports whether a should sort before b.
type LessFunc[T any] func(a, b T) bool

// Heap is a binary heap over a contiguous backing slice.
// Value-based storage: no pointer indirection, no per-item allocation.
type Heap[T any] struct {
	less  LessFunc[T]
	items []T
}

// New initializes a heap with the given capacity hint and ordering.
func New[T any](capacity int, less LessFunc[T]) *Heap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Heap[T]{
		less:  less,
		items: make([]T, 0, capacity),
	}
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// Peek returns the root item without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Push inserts an item while maintaining the heap invariant.
func (h *Heap[T]) Push(item T) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the root item while maintaining the heap invariant.
func (h *Heap[T]) Pop() (T, bool) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	root := h.items[0]
	last := h.items[n-1]
	var zero T
	h.items[n-1] = zero // clear for GC
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.items[0] = last
		h.siftDown(0)
	}
	return root, true
}

// Replace swaps the root for item in a single sift-down pass.
// Equivalent to Pop followed by Push on a non-empty heap.
func (h *Heap[T]) Replace(item T) {
	if len(h.items) == 0 {
		h.Push(item)
		return
	}
	h.items[0] = item
	h.siftDown(0)
}

// Slice returns a copy of the backing slice in heap order.
func (h *Heap[T]) Slice() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)
	return out
}

// Clone returns an independent heap with the same ordering and contents.
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{
		less:  h.less,
		items: h.Slice(),
	}
}

// Reset clears the heap for reuse, keeping the backing capacity.
func (h *Heap[T]) Reset() {
	var zero T
	for i := range h.items {
		h.items[i] = zero
	}
	h.items = h.items[:0]
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(h.items[i], h.items[p]) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.less(h.items[r], h.items[l]) {
			best = r
		}
		if !h.less(h.items[best], h.items[i]) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
