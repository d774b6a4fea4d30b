// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

import "iter"

// ForEach calls fn with every entry, head to tail.
//
// fn may mutate the queue while it runs: remove the entry it was given,
// remove other entries, push new ones, clear the queue, or Destroy it.
// The walk stays safe under all of these:
//
//   - The node after the current one is remembered before fn is called.
//   - After fn returns the walk continues only if that node is still in the
//     queue. If fn removed it, or cleared the queue, the walk stops.
//   - If fn destroyed the queue the walk stops, and the backing storage is
//     released when ForEach returns.
//
// Entries pushed at the tail during the walk are visited if the walk
// reaches them. A push made while fn visits the last entry is not visited:
// that entry had no successor when the walk remembered it, so the walk ends.
// The walk cannot be stopped from fn; use All for that.
//
// ForEach is a no-op if q is nil, destroyed, or empty, or fn is nil.
func (q *Queue[T]) ForEach(fn VisitFunc[T]) {
	if fn == nil {
		return
	}
	q.walk(func(elem T) bool {
		fn(elem)
		return true
	})
}

// All returns an iterator over the entries, head to tail, with the same
// mutation rules as ForEach. Breaking out of the range loop ends the walk.
//
//	for conn := range q.All() {
//	    if conn.Closed() {
//	        q.Remove(conn)
//	    }
//	}
func (q *Queue[T]) All() iter.Seq[T] {
	return q.walk
}

// Values returns a head-to-tail copy of the entries.
// Returns nil if the queue is nil, destroyed, or empty.
func (q *Queue[T]) Values() []T {
	if !q.alive() || q.entries == 0 {
		return nil
	}

	out := make([]T, 0, q.entries)
	for i := q.head; i != nilIndex; i = q.nodes.slots[i].next {
		out = append(out, q.nodes.slots[i].data)
	}
	return out
}

// walk is the reentrant traversal behind ForEach and All.
func (q *Queue[T]) walk(yield func(T) bool) {
	if !q.alive() || q.head == nilIndex {
		return
	}

	q.hold()
	defer q.unhold()

	for i := q.head; q.state == live; {
		s := &q.nodes.slots[i]
		elem := s.data
		next := q.nodes.cursorOf(s.next)

		if !yield(elem) {
			return
		}
		if !q.nodes.resolve(next) {
			return
		}
		i = next.idx
	}
}
