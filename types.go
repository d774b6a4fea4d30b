// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

// DestroyFunc releases a caller-owned handle removed from the queue.
//
// The queue never releases handles on its own. Destructive operations
// (Destroy, Clear, RemoveMatching, RemoveAll) accept an optional DestroyFunc
// and call it once per removed handle, head to tail.
type DestroyFunc[T any] func(elem T)

// MatchFunc reports whether a handle is selected by a search or a
// conditional removal. State the test needs is captured by the closure.
//
// A MatchFunc must not mutate the queue it is evaluated against.
type MatchFunc[T any] func(elem T) bool

// VisitFunc is called by ForEach once per entry.
//
// Unlike MatchFunc, a VisitFunc may mutate the queue, including destroying
// it. See [Queue.ForEach] for the exact contract.
type VisitFunc[T any] func(elem T)

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to match the lfq queue family; the queue
// stores a copy of the pointed-to value.
type Producer[T any] interface {
	// Enqueue adds an element at the tail (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is at its limit,
	// ErrDestroyed if the queue has been destroyed.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
type Consumer[T any] interface {
	// Dequeue removes and returns the head element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty,
	// (zero-value, ErrDestroyed) if the queue has been destroyed.
	Dequeue() (T, error)
}

var (
	_ Producer[int] = (*Queue[int])(nil)
	_ Consumer[int] = (*Queue[int])(nil)
)
