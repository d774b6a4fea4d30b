// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lq provides a reference-counted linked queue that tolerates
// mutation, including its own destruction, from inside iteration callbacks.
//
// A Queue stores caller-owned handles (typically pointers) in insertion
// order. Handles can be pushed at the head or the tail and popped from the
// head, so the same type serves FIFO and LIFO use:
//
//   - FIFO: PushTail + PopHead
//   - LIFO: PushHead + PopHead
//
// # Quick Start
//
// Direct constructor (recommended for most cases):
//
//	q := lq.NewQueue[*Request]()
//	defer q.Destroy(nil)
//
// Builder API for preallocation, a size limit, or a logger:
//
//	q := lq.Build[*Request](lq.New().Reserve(64).Limit(1024))
//
// # Basic Usage
//
//	q := lq.NewQueue[*Conn]()
//
//	q.PushTail(a)
//	q.PushTail(b)
//	q.PushHead(c)              // c, a, b
//
//	head, ok := q.PeekHead()   // c, true
//	tail, ok := q.PeekTail()   // b, true
//	conn, ok := q.PopHead()    // c, true; queue is a, b
//
//	q.Remove(a)                // by identity
//	q.RemoveIf(func(c *Conn) bool { return c.Closed() })
//
// # Ownership
//
// The queue owns its nodes, never the handles in them. Operations that drop
// entries in bulk take an optional DestroyFunc that is called once per
// removed handle, head to tail:
//
//	q.Clear(func(c *Conn) { c.Close() })            // remove all, keep queue
//	q.RemoveMatching(isIdle, func(c *Conn) { ... }) // remove some
//	q.Destroy(func(c *Conn) { c.Close() })          // remove all, drop queue
//
// RemoveAll keeps the combined form: a nil match clears everything, a
// non-nil match removes only matching entries.
//
// # Reentrant Iteration
//
// ForEach and All hand every entry to a callback, and the callback may
// change the queue under the walk:
//
//	q.ForEach(func(c *Conn) {
//	    if c.Closed() {
//	        q.Remove(c)        // safe: the walk continues with the next entry
//	    }
//	    if c.Fatal() {
//	        q.Destroy(nil)     // safe: the walk stops, storage freed on return
//	    }
//	})
//
// The walk remembers the next node before each callback and, afterwards,
// continues only if that node is still in the queue. Nodes are addressed by
// arena index plus generation, so a node that was removed and whose slot was
// reused is never mistaken for the remembered one.
//
// Destroying the queue while a walk is active drops the owner's reference
// only. The walk holds its own reference, and the backing storage is
// released when the last reference goes.
//
// # Absent Queues
//
// A nil *Queue and a destroyed Queue behave as absent: pushes report false,
// pops and peeks report (zero, false), Len is 0, IsEmpty is true, and
// iteration does nothing. No method panics on an absent queue.
//
// # Error Handling
//
// The core methods report through bool results. Enqueue and Dequeue
// implement the Producer and Consumer interfaces and report through errors:
// [ErrWouldBlock] (queue at its limit, or empty) is sourced from
// [code.hybscloud.com/iox], and [ErrDestroyed] marks a nil or destroyed
// queue.
//
//	if err := q.Enqueue(&conn); lq.IsWouldBlock(err) {
//	    // at limit; retry after a Dequeue
//	}
//
// Other classification (iox.IsSemantic, iox.IsNonFailure) works on these
// errors directly.
//
// # Thread Safety
//
// A Queue is not safe for concurrent use. The reference count is atomic so
// that holders nested on one call stack (a walk and the callback that
// destroys the queue) stay consistent; it is not a lock. Guard a Queue
// shared between goroutines externally.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for the reference count.
package lq
