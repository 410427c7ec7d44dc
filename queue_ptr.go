// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdcq

import "unsafe"

// QueuePtr is a Queue for unsafe.Pointer values, for zero-copy transfer
// of objects from the write domain to the read domain. The producer
// transfers ownership on a successful TryWrite and must not touch the
// object afterward.
type QueuePtr struct {
	core
	buffer []unsafe.Pointer
}

func newQueuePtr(o Options) *QueuePtr {
	q := &QueuePtr{buffer: make([]unsafe.Pointer, o.depth)}
	q.init(o)
	return q
}

// TryWrite appends a pointer (write domain only).
// Returns ErrFull with no side effects when full.
func (q *QueuePtr) TryWrite(elem unsafe.Pointer) error {
	if q.full() {
		return ErrFull
	}
	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to q.buffer[q.wr.index(q.mask)] = elem
	*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(q.wr.index(q.mask))*ptrSize)) = elem
	q.wr.advance()
	return nil
}

// TryRead removes and returns the oldest pointer (read domain only).
// Returns (nil, ErrEmpty) with no side effects when empty.
func (q *QueuePtr) TryRead() (unsafe.Pointer, error) {
	if q.empty() {
		return nil, ErrEmpty
	}
	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to elem := q.buffer[q.rd.index(q.mask)]
	idx := int(q.rd.index(q.mask))
	elem := *(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), idx*ptrSize))
	q.buffer[idx] = nil // release the reference
	q.rd.advance()
	return elem, nil
}

// StepWriteDomain advances the write domain by one scheduling step.
func (q *QueuePtr) StepWriteDomain() {
	q.stepWriteDomain()
}

// StepReadDomain advances the read domain by one scheduling step.
func (q *QueuePtr) StepReadDomain() {
	q.stepReadDomain()
}

// Reset zeroes both counters and synchronizer pipelines.
// Both domains must be quiescent; see Queue.Reset.
func (q *QueuePtr) Reset() {
	q.resetCore()
}

// Status reports flags and the occupancy estimate; see Queue.Status for
// the per-domain perspective and quiescence requirement.
func (q *QueuePtr) Status() Status {
	return q.status()
}

// Cap returns the queue depth.
func (q *QueuePtr) Cap() int {
	return q.capacity()
}
