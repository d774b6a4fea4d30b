// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

// Remove unlinks the first entry equal to elem (by ==) and reports whether
// one was found. O(n).
//
// The zero value is treated as an absent handle and never matches, even if
// it was pushed. Use RemoveIf to remove a stored zero value.
func (q *Queue[T]) Remove(elem T) bool {
	var zero T
	if !q.alive() || elem == zero {
		return false
	}

	prev := nilIndex
	for i := q.head; i != nilIndex; prev, i = i, q.nodes.slots[i].next {
		if q.nodes.slots[i].data == elem {
			q.unlink(prev, i)
			return true
		}
	}
	return false
}

// RemoveIf unlinks the first entry for which match reports true and returns
// its handle. Returns (zero-value, false) if nothing matches or match is nil.
func (q *Queue[T]) RemoveIf(match MatchFunc[T]) (T, bool) {
	if !q.alive() || match == nil {
		var zero T
		return zero, false
	}

	prev := nilIndex
	for i := q.head; i != nilIndex; prev, i = i, q.nodes.slots[i].next {
		if match(q.nodes.slots[i].data) {
			return q.unlink(prev, i), true
		}
	}
	var zero T
	return zero, false
}

// RemoveMatching unlinks every entry for which match reports true in one
// head-to-tail pass, then calls destroy (if non-nil) with each removed
// handle in the order they were stored. Remaining entries keep their order.
// Returns the number removed; 0 if match is nil.
//
// Matching entries are unlinked before any destroy call, so destroy may
// mutate or destroy the queue. match therefore sees every entry before the
// first destroy runs and cannot observe destroy's side effects.
func (q *Queue[T]) RemoveMatching(match MatchFunc[T], destroy DestroyFunc[T]) int {
	if !q.alive() || match == nil {
		return 0
	}

	// Matching nodes are relinked into a private chain [first, last].
	first, last := nilIndex, nilIndex
	prev := nilIndex
	for i := q.head; i != nilIndex; {
		s := &q.nodes.slots[i]
		next := s.next
		if !match(s.data) {
			prev, i = i, next
			continue
		}

		if prev == nilIndex {
			q.head = next
		} else {
			q.nodes.slots[prev].next = next
		}
		if next == nilIndex {
			q.tail = prev
		}
		q.entries--

		q.nodes.orphan(i)
		s.next = nilIndex
		if last == nilIndex {
			first = i
		} else {
			q.nodes.slots[last].next = i
		}
		last = i
		i = next
	}

	return q.drain(first, destroy)
}

// Clear removes every entry, calling destroy (if non-nil) with each handle
// head to tail, and returns how many were removed. Unlike Destroy, the queue
// stays usable.
//
// The queue is emptied before any destroy call, so destroy may push into,
// clear, or destroy the queue.
func (q *Queue[T]) Clear(destroy DestroyFunc[T]) int {
	if !q.alive() {
		return 0
	}
	return q.drain(q.detach(), destroy)
}

// RemoveAll removes the entries selected by match, or every entry when match
// is nil, calling destroy (if non-nil) on each removed handle. Returns the
// number removed.
//
// RemoveAll(nil, d) is Clear(d); RemoveAll(m, d) is RemoveMatching(m, d).
// New code should call those directly.
func (q *Queue[T]) RemoveAll(match MatchFunc[T], destroy DestroyFunc[T]) int {
	if match == nil {
		return q.Clear(destroy)
	}
	return q.RemoveMatching(match, destroy)
}

// Find returns the first entry for which match reports true.
// A nil match finds nothing; there is no default equality match.
func (q *Queue[T]) Find(match MatchFunc[T]) (T, bool) {
	if !q.alive() || match == nil {
		var zero T
		return zero, false
	}

	for i := q.head; i != nilIndex; i = q.nodes.slots[i].next {
		if data := q.nodes.slots[i].data; match(data) {
			return data, true
		}
	}
	var zero T
	return zero, false
}
