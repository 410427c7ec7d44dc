// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdcq

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrFull indicates a write was rejected because the queue is full.
//
// ErrFull is a control flow signal, not a failure. Full is an expected
// steady-state condition: the writer's view of occupancy is conservative
// (stale reads only make the queue look fuller), so a rejected write
// should simply be retried after the write domain has stepped again.
//
// ErrFull wraps [iox.ErrWouldBlock] for ecosystem consistency, so both
// errors.Is(err, ErrFull) and IsWouldBlock(err) classify it.
var ErrFull = fmt.Errorf("cdcq: queue full: %w", iox.ErrWouldBlock)

// ErrEmpty indicates a read was rejected because the queue is empty.
//
// ErrEmpty is a control flow signal, not a failure. Empty is an expected
// steady-state condition: the reader's view of occupancy is conservative
// (stale writes only make the queue look emptier), so a rejected read
// should simply be retried after the read domain has stepped again.
//
// ErrEmpty wraps [iox.ErrWouldBlock] for ecosystem consistency, so both
// errors.Is(err, ErrEmpty) and IsWouldBlock(err) classify it.
var ErrEmpty = fmt.Errorf("cdcq: queue empty: %w", iox.ErrWouldBlock)

// IsWouldBlock reports whether err indicates the operation would block,
// which covers both ErrFull and ErrEmpty.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrFull, and ErrEmpty.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
