// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

import "math"

// nilIndex marks the absence of a node (no head, no tail, no next).
const nilIndex int32 = -1

// maxSlots is the largest arena the int32 index space can address.
const maxSlots = math.MaxInt32

// slot is one queue node. Released slots are chained through next into
// the arena's free list.
type slot[T any] struct {
	data T
	next int32
	gen  uint32 // Bumped on every release
	live bool
}

// cursor names a node by index and generation. A cursor outlives the node
// it names: once the slot is released, the cursor stops resolving even if
// the index is handed out again.
type cursor struct {
	idx int32
	gen uint32
}

var nilCursor = cursor{idx: nilIndex}

// arena stores queue nodes in an index-stable slice with free-list reuse.
//
// Indices stay valid across growth; pointers into slots do not, so callers
// must not hold a *slot across an alloc.
type arena[T any] struct {
	slots []slot[T]
	free  int32 // Head of the free list
	limit int   // Maximum live slots, 0 for unbounded
}

func newArena[T any](reserve, limit int) arena[T] {
	a := arena[T]{free: nilIndex, limit: limit}
	if reserve > 0 {
		a.slots = make([]slot[T], 0, reserve)
	}
	return a
}

// alloc stores data in a fresh slot and returns its index.
// Reports false when the arena is at its limit; nothing is changed then.
func (a *arena[T]) alloc(data T) (int32, bool) {
	if a.free != nilIndex {
		i := a.free
		s := &a.slots[i]
		a.free = s.next
		s.data = data
		s.next = nilIndex
		s.live = true
		return i, true
	}

	n := len(a.slots)
	if n >= maxSlots || (a.limit > 0 && n >= a.limit) {
		return nilIndex, false
	}
	a.slots = append(a.slots, slot[T]{data: data, next: nilIndex, live: true})
	return int32(n), true
}

// release returns slot i to the free list and hands back its data.
// The slot's generation moves on so outstanding cursors stop resolving.
func (a *arena[T]) release(i int32) T {
	s := &a.slots[i]
	data := s.data
	var zero T
	s.data = zero
	s.gen++
	s.live = false
	s.next = a.free
	a.free = i
	return data
}

// cursorOf returns a cursor for slot i, or nilCursor for nilIndex.
func (a *arena[T]) cursorOf(i int32) cursor {
	if i == nilIndex {
		return nilCursor
	}
	return cursor{idx: i, gen: a.slots[i].gen}
}

// orphan marks slot i as no longer linked into the queue. Its data stays
// until release, but no cursor resolves to it.
func (a *arena[T]) orphan(i int32) {
	a.slots[i].live = false
}

// resolve reports whether c still names a live node. Slots are orphaned as
// soon as they leave the queue, so every live slot is linked into it and
// this is the reachability check for c.
func (a *arena[T]) resolve(c cursor) bool {
	if c.idx < 0 || int(c.idx) >= len(a.slots) {
		return false
	}
	s := &a.slots[c.idx]
	return s.live && s.gen == c.gen
}

// drop discards all slots. No cursor resolves afterwards.
func (a *arena[T]) drop() {
	a.slots = nil
	a.free = nilIndex
}
