// SPDX-License-Identifier: MIT

// Package pqueue provides a generic binary min-heap ordered by a
// caller-supplied priority predicate.
//
// What:
//
//   - PriorityQueue[T] stores arbitrary elements in an implicit binary heap.
//   - The ordering is defined by higher(a, b): it reports whether a has
//     priority over or equal to b. The root is always an element for which
//     higher(root, x) holds for every other x in the queue.
//
// Complexity:
//
//   - Enqueue: O(log n) (append + sift-up).
//   - Dequeue: O(log n) (move last to root + sift-down).
//   - Peek, Len, IsEmpty: O(1).
//
// Ties:
//
//	Elements of equal priority leave the queue in an order that depends on
//	the heap shape, which in turn depends on insertion order. The order is
//	reproducible for a fixed sequence of operations but is not FIFO. Callers
//	that need a stable order among equals must encode a tie-breaker in the
//	predicate.
//
// Errors:
//
//   - ErrEmpty: Dequeue or Peek on an empty queue.
package pqueue
