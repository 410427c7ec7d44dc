// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdcq

// QueueIndirect is a Queue for uintptr values: pool indices, handles, or
// any word-sized token. Same crossing discipline as Queue[T], with an
// inline buffer instead of the Storage collaborator.
type QueueIndirect struct {
	core
	buffer []uintptr
}

func newQueueIndirect(o Options) *QueueIndirect {
	q := &QueueIndirect{buffer: make([]uintptr, o.depth)}
	q.init(o)
	return q
}

// TryWrite appends a value (write domain only).
// Returns ErrFull with no side effects when full.
func (q *QueueIndirect) TryWrite(elem uintptr) error {
	if q.full() {
		return ErrFull
	}
	q.buffer[q.wr.index(q.mask)] = elem
	q.wr.advance()
	return nil
}

// TryRead removes and returns the oldest value (read domain only).
// Returns (0, ErrEmpty) with no side effects when empty.
func (q *QueueIndirect) TryRead() (uintptr, error) {
	if q.empty() {
		return 0, ErrEmpty
	}
	elem := q.buffer[q.rd.index(q.mask)]
	q.rd.advance()
	return elem, nil
}

// StepWriteDomain advances the write domain by one scheduling step.
func (q *QueueIndirect) StepWriteDomain() {
	q.stepWriteDomain()
}

// StepReadDomain advances the read domain by one scheduling step.
func (q *QueueIndirect) StepReadDomain() {
	q.stepReadDomain()
}

// Reset zeroes both counters and synchronizer pipelines.
// Both domains must be quiescent; see Queue.Reset.
func (q *QueueIndirect) Reset() {
	q.resetCore()
}

// Status reports flags and the occupancy estimate; see Queue.Status for
// the per-domain perspective and quiescence requirement.
func (q *QueueIndirect) Status() Status {
	return q.status()
}

// Cap returns the queue depth.
func (q *QueueIndirect) Cap() int {
	return q.capacity()
}
