// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

import (
	"log/slog"

	"code.hybscloud.com/atomix"
)

// Queue is a reference-counted singly linked queue of caller-owned handles.
//
// Entries can be pushed at either end and popped from the head, so the queue
// serves as FIFO (PushTail + PopHead) or LIFO (PushHead + PopHead).
// Nodes live in an index-stable arena; the queue owns the nodes, never the
// handles stored in them.
//
// A nil *Queue is valid and behaves as an absent queue: every method is a
// no-op returning false, zero, or an empty result. A destroyed queue behaves
// the same way.
//
// Queue is not safe for concurrent use. Reentrant use from callbacks
// (ForEach, All, destructors) is supported as documented per method.
//
// Memory: O(n) nodes, slots of removed entries are reused
type Queue[T comparable] struct {
	refs     atomix.Int64 // Owner plus active holders
	state    lifetime
	deferred bool // Release was deferred to a holder
	head     int32
	tail     int32
	entries  int
	nodes    arena[T]
	log      *slog.Logger
}

// NewQueue creates an empty unbounded queue.
// The caller holds the only reference until Destroy.
func NewQueue[T comparable]() *Queue[T] {
	return newQueue[T](0, 0, nil)
}

func newQueue[T comparable](reserve, limit int, log *slog.Logger) *Queue[T] {
	q := &Queue[T]{
		head:  nilIndex,
		tail:  nilIndex,
		nodes: newArena[T](reserve, limit),
		log:   log,
	}
	q.refs.StoreRelaxed(1)
	return q
}

// Destroy removes every entry head to tail, calls destroy (if non-nil) with
// each handle, then drops the owner's reference.
//
// If an iteration or drain is in progress further up the call stack, the
// backing storage is released when that holder finishes rather than now.
// Either way the queue behaves as absent once Destroy returns.
// Destroy on a nil or already destroyed queue is a no-op.
func (q *Queue[T]) Destroy(destroy DestroyFunc[T]) {
	if !q.alive() {
		return
	}

	q.state = pendingRelease
	q.drain(q.detach(), destroy)
	q.disown()
}

// PushTail appends elem after the current tail.
// Returns false if q is nil, destroyed, or at its limit.
// The zero value is a legal element.
func (q *Queue[T]) PushTail(elem T) bool {
	if !q.alive() {
		return false
	}

	i, ok := q.nodes.alloc(elem)
	if !ok {
		return false
	}

	if q.tail != nilIndex {
		q.nodes.slots[q.tail].next = i
	}
	q.tail = i
	if q.head == nilIndex {
		q.head = i
	}
	q.entries++
	return true
}

// PushHead prepends elem before the current head.
// Returns false if q is nil, destroyed, or at its limit.
func (q *Queue[T]) PushHead(elem T) bool {
	if !q.alive() {
		return false
	}

	i, ok := q.nodes.alloc(elem)
	if !ok {
		return false
	}

	q.nodes.slots[i].next = q.head
	q.head = i
	if q.tail == nilIndex {
		q.tail = i
	}
	q.entries++
	return true
}

// PopHead removes and returns the head element.
// Returns (zero-value, false) if q is nil, destroyed, or empty.
func (q *Queue[T]) PopHead() (T, bool) {
	if !q.alive() || q.head == nilIndex {
		var zero T
		return zero, false
	}

	return q.unlink(nilIndex, q.head), true
}

// PeekHead returns the head element without removing it.
func (q *Queue[T]) PeekHead() (T, bool) {
	if !q.alive() || q.head == nilIndex {
		var zero T
		return zero, false
	}
	return q.nodes.slots[q.head].data, true
}

// PeekTail returns the tail element without removing it.
func (q *Queue[T]) PeekTail() (T, bool) {
	if !q.alive() || q.tail == nilIndex {
		var zero T
		return zero, false
	}
	return q.nodes.slots[q.tail].data, true
}

// Len returns the number of entries. Zero for a nil or destroyed queue.
func (q *Queue[T]) Len() int {
	if !q.alive() {
		return 0
	}
	return q.entries
}

// IsEmpty reports whether the queue has no entries.
// True for a nil or destroyed queue.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Enqueue appends *elem at the tail.
// Returns ErrDestroyed on a nil or destroyed queue and ErrWouldBlock
// when the queue is at its limit.
func (q *Queue[T]) Enqueue(elem *T) error {
	if !q.alive() {
		return ErrDestroyed
	}
	if !q.PushTail(*elem) {
		return ErrWouldBlock
	}
	return nil
}

// Dequeue removes and returns the head element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if !q.alive() {
		var zero T
		return zero, ErrDestroyed
	}
	elem, ok := q.PopHead()
	if !ok {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// unlink detaches node i, whose predecessor is prev (nilIndex for the head),
// releases its slot and returns its handle.
func (q *Queue[T]) unlink(prev, i int32) T {
	next := q.nodes.slots[i].next
	if prev == nilIndex {
		q.head = next
	} else {
		q.nodes.slots[prev].next = next
	}
	if next == nilIndex {
		q.tail = prev
	}
	q.entries--
	return q.nodes.release(i)
}

// detach empties the queue and returns the first node of the old chain.
// The chain's slots are orphaned until drained.
func (q *Queue[T]) detach() int32 {
	first := q.head
	for i := first; i != nilIndex; i = q.nodes.slots[i].next {
		q.nodes.orphan(i)
	}
	q.head, q.tail = nilIndex, nilIndex
	q.entries = 0
	return first
}

// drain releases a detached chain starting at first, calling destroy (if
// non-nil) with each handle after its slot is released. Returns the number
// of nodes released.
//
// The chain is unreachable from head and its slots are orphaned, so destroy
// may push, clear, or destroy the queue, or resume a paused walk, without
// touching it. A hold is kept for the duration
// so destroying the queue from destroy defers the arena release.
func (q *Queue[T]) drain(first int32, destroy DestroyFunc[T]) int {
	if first == nilIndex {
		return 0
	}

	q.hold()
	defer q.unhold()

	n := 0
	for i := first; i != nilIndex; {
		next := q.nodes.slots[i].next
		elem := q.nodes.release(i)
		n++
		if destroy != nil {
			destroy(elem)
		}
		i = next
	}
	return n
}
