// SPDX-License-Identifier: MIT

package pqueue

import "errors"

// ErrEmpty is returned by Dequeue and Peek when the queue holds no elements.
var ErrEmpty = errors.New("pqueue: queue is empty")

// PriorityQueue is a binary min-heap over T.
// The zero value is not usable; construct with New.
type PriorityQueue[T any] struct {
	heap   []T
	higher func(a, b T) bool
}

// New returns an empty queue ordered by higher, where higher(a, b) reports
// whether a has priority over or equal to b.
// Panics on a nil predicate.
func New[T any](higher func(a, b T) bool) *PriorityQueue[T] {
	if higher == nil {
		panic("pqueue: New(nil)")
	}
	return &PriorityQueue[T]{higher: higher}
}

// Len returns the number of queued elements.
func (pq *PriorityQueue[T]) Len() int { return len(pq.heap) }

// IsEmpty reports whether the queue holds no elements.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.heap) == 0 }

// Enqueue appends item and restores heap order by sifting it up.
func (pq *PriorityQueue[T]) Enqueue(item T) {
	pq.heap = append(pq.heap, item)
	pq.siftUp(len(pq.heap) - 1)
}

// Dequeue removes and returns the highest-priority element.
// Returns ErrEmpty and the zero value when the queue is empty.
func (pq *PriorityQueue[T]) Dequeue() (T, error) {
	var zero T
	n := len(pq.heap)
	if n == 0 {
		return zero, ErrEmpty
	}

	root := pq.heap[0]
	last := n - 1
	pq.heap[0] = pq.heap[last]
	pq.heap[last] = zero // drop the reference held by the backing array
	pq.heap = pq.heap[:last]
	if last > 0 {
		pq.siftDown(0)
	}

	return root, nil
}

// Peek returns the highest-priority element without removing it.
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if len(pq.heap) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return pq.heap[0], nil
}

// siftUp moves the element at i towards the root while it strictly
// outranks its parent.
func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if pq.higher(pq.heap[parent], pq.heap[i]) {
			break
		}
		pq.heap[i], pq.heap[parent] = pq.heap[parent], pq.heap[i]
		i = parent
	}
}

// siftDown moves the element at i towards the leaves, swapping with the
// best child while that child strictly outranks it.
func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.heap)
	for {
		best := i
		left, right := 2*i+1, 2*i+2
		if left < n && !pq.higher(pq.heap[best], pq.heap[left]) {
			best = left
		}
		if right < n && !pq.higher(pq.heap[best], pq.heap[right]) {
			best = right
		}
		if best == i {
			return
		}
		pq.heap[i], pq.heap[best] = pq.heap[best], pq.heap[i]
		i = best
	}
}
