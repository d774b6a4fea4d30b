// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock is returned by Enqueue when the queue is at its limit and by
// Dequeue when it is empty. It is [iox.ErrWouldBlock], so callers can
// classify it with the iox helpers.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrDestroyed is returned by Enqueue and Dequeue on a nil or destroyed queue.
var ErrDestroyed = errors.New("lq: queue destroyed")

// IsWouldBlock reports whether err, possibly wrapped, is ErrWouldBlock.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
