// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

import "log/slog"

// Options configures queue creation.
type Options struct {
	reserve int          // Preallocated node slots
	limit   int          // Maximum live entries, 0 for unbounded
	logger  *slog.Logger // Lifecycle events, nil for none
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Unbounded queue with 64 preallocated nodes
//	q := lq.Build[*Conn](lq.New().Reserve(64))
//
//	// Bounded queue: inserts fail once 1024 entries are live
//	q := lq.Build[*Request](lq.New().Limit(1024))
//
//	// Lifecycle events to a logger
//	q := lq.Build[*Session](lq.New().Logger(slog.Default()))
type Builder struct {
	opts Options
}

// New creates a queue builder with default options:
// no preallocation, no limit, no logger.
func New() *Builder {
	return &Builder{}
}

// Reserve preallocates room for n nodes.
// Panics if n < 0.
func (b *Builder) Reserve(n int) *Builder {
	if n < 0 {
		panic("lq: reserve must be >= 0")
	}
	b.opts.reserve = n
	return b
}

// Limit caps the number of live entries. Once n entries are stored,
// PushHead and PushTail report false and Enqueue returns ErrWouldBlock.
// Zero means unbounded.
// Panics if n < 0.
func (b *Builder) Limit(n int) *Builder {
	if n < 0 {
		panic("lq: limit must be >= 0")
	}
	b.opts.limit = n
	return b
}

// Logger sets the logger that receives Debug records for lifecycle events
// (deferred release). Queue operations themselves never log.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.opts.logger = l
	return b
}

// Build creates an empty Queue[T] from the builder's options.
//
// Reserve beyond Limit is clamped to Limit.
func Build[T comparable](b *Builder) *Queue[T] {
	reserve := b.opts.reserve
	if b.opts.limit > 0 && reserve > b.opts.limit {
		reserve = b.opts.limit
	}
	return newQueue[T](reserve, b.opts.limit, b.opts.logger)
}
