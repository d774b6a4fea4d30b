// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

// lifetime is the queue's explicit lifecycle state.
//
//	live           → owner holds the queue; all operations work
//	pendingRelease → owner destroyed it while another holder was active
//	released       → backing storage dropped; all operations are no-ops
//
// Transitions only move forward.
type lifetime uint8

const (
	live lifetime = iota
	pendingRelease
	released
)

func (l lifetime) String() string {
	switch l {
	case live:
		return "live"
	case pendingRelease:
		return "pending-release"
	case released:
		return "released"
	default:
		return "unknown"
	}
}

// hold registers an additional holder (an iteration or a drain).
func (q *Queue[T]) hold() {
	q.refs.AddAcqRel(1)
}

// unhold drops a holder's reference. The last reference out releases the
// backing storage.
//
// The count is atomic for holders nested on one call stack only. It does
// not make the queue safe for use from several goroutines.
func (q *Queue[T]) unhold() {
	if q.refs.AddAcqRel(-1) > 0 {
		return
	}
	q.release()
}

// disown drops the owner's reference. Release is deferred to the last
// active holder when one exists.
func (q *Queue[T]) disown() {
	if q.refs.AddAcqRel(-1) > 0 {
		q.deferred = true
		if q.log != nil {
			q.log.Debug("lq: release deferred to active holder",
				"holders", q.refs.Load())
		}
		return
	}
	q.release()
}

func (q *Queue[T]) release() {
	q.nodes.drop()
	q.head, q.tail = nilIndex, nilIndex
	q.entries = 0
	q.state = released

	if q.deferred && q.log != nil {
		q.log.Debug("lq: deferred release completed")
	}
}

// alive reports whether q is non-nil and still owned.
func (q *Queue[T]) alive() bool {
	return q != nil && q.state == live
}
