// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdcq

import "code.hybscloud.com/cdcq/internal/gray"

// core holds the clock-domain-crossing machinery shared by every queue
// flavor: one pointer engine and one inbound synchronizer per domain,
// plus the fixed geometry. The write-domain block and read-domain block
// are padded apart so the two free-running domains do not false-share.
//
// Ownership discipline: the write domain mutates only wr and wsync, the
// read domain only rd and rsync. The sole values crossing between them
// are the Gray-coded registers inside the pointer engines, published with
// release stores and sampled with acquire loads.
type core struct {
	_ pad

	// Write domain: its own position counter plus the read pointer as
	// last seen through the write-side synchronizer.
	wr    pointerEngine
	wsync synchronizer

	_ pad

	// Read domain, symmetric.
	rd    pointerEngine
	rsync synchronizer

	_ pad

	depth         uint64 // capacity, power of two
	mask          uint64 // depth - 1, storage index bits
	wrapMask      uint64 // 2*depth - 1, counter bits
	almostFullAt  int    // -1 when the flag is not configured
	almostEmptyAt int
}

// init wires the geometry and points each domain's synchronizer at the
// other domain's published register. Must run on the final address of the
// embedding struct.
func (c *core) init(o Options) {
	c.depth = uint64(o.depth)
	c.mask = c.depth - 1
	c.wrapMask = 2*c.depth - 1
	c.almostFullAt = o.almostFull
	c.almostEmptyAt = o.almostEmpty
	c.wr.mask = c.wrapMask
	c.rd.mask = c.wrapMask

	n := o.pipelineStages()
	c.wsync = newSynchronizer(&c.rd.encoded, n)
	c.rsync = newSynchronizer(&c.wr.encoded, n)
}

// full is the write-domain flag: computed from the locally owned write
// counter and the settled (stale-by-up-to-N-steps) read pointer. The
// staleness only ever biases toward reporting full, never toward
// accepting a write into an unread slot.
func (c *core) full() bool {
	return isFull(c.wr.counter, gray.Decode(c.wsync.settled()), c.depth)
}

// empty is the read-domain flag, with the symmetric conservative bias:
// staleness only ever biases toward reporting empty, never toward reading
// an uncommitted slot.
func (c *core) empty() bool {
	return isEmpty(c.rd.counter, gray.Decode(c.rsync.settled()))
}

func (c *core) stepWriteDomain() {
	c.wsync.step()
}

func (c *core) stepReadDomain() {
	c.rsync.step()
}

func (c *core) resetCore() {
	c.wr.reset()
	c.rd.reset()
	c.wsync.reset(0)
	c.rsync.reset(0)
}

func (c *core) status() Status {
	syncedRead := gray.Decode(c.wsync.settled())
	syncedWrite := gray.Decode(c.rsync.settled())
	writerOcc := distance(c.wr.counter, syncedRead, c.wrapMask)

	return Status{
		Full:        isFull(c.wr.counter, syncedRead, c.depth),
		Empty:       isEmpty(c.rd.counter, syncedWrite),
		AlmostFull:  almostFull(c.wr.counter, syncedRead, c.depth, c.wrapMask, c.almostFullAt),
		AlmostEmpty: almostEmpty(c.rd.counter, syncedWrite, c.wrapMask, c.almostEmptyAt),
		Occupancy:   int(writerOcc),
		Free:        int(c.depth - writerOcc),
	}
}

func (c *core) capacity() int {
	return int(c.depth)
}

// Queue is a bounded FIFO queue safe to operate from two independent,
// unsynchronized timing domains: one producer role and one consumer role,
// each driven by its own step loop.
//
// The write domain calls TryWrite and StepWriteDomain; the read domain
// calls TryRead and StepReadDomain. Neither side ever blocks: a full or
// empty condition rejects the operation locally with no side effects.
// All accepted writes are observed by reads in acceptance order.
//
// Memory: O(depth) items plus two fixed synchronizer pipelines.
type Queue[T any] struct {
	core
	storage Storage[T]
}

func newQueue[T any](o Options, storage Storage[T]) *Queue[T] {
	q := &Queue[T]{storage: storage}
	q.init(o)
	return q
}

// TryWrite appends an item (write domain only).
//
// The item is copied into storage at the write pointer's slot before the
// pointer advance is published, so a reader that later observes the
// advanced pointer also observes the committed item.
//
// Returns ErrFull, with no state change, when the queue is full from the
// writer's conservative view.
func (q *Queue[T]) TryWrite(elem *T) error {
	if q.full() {
		return ErrFull
	}
	q.storage.Write(int(q.wr.index(q.mask)), *elem)
	q.wr.advance()
	return nil
}

// TryRead removes and returns the oldest item (read domain only).
//
// The consumed slot is overwritten with the zero value to release any
// references held by the stored item, then the read pointer advance is
// published, returning the slot to the writer.
//
// Returns ErrEmpty, with no state change, when the queue is empty from
// the reader's conservative view.
func (q *Queue[T]) TryRead() (T, error) {
	var zero T
	if q.empty() {
		return zero, ErrEmpty
	}
	idx := int(q.rd.index(q.mask))
	elem := q.storage.Read(idx)
	q.storage.Write(idx, zero)
	q.rd.advance()
	return elem, nil
}

// StepWriteDomain advances the write domain by one scheduling step,
// shifting the read pointer one stage further through the write-side
// synchronizer. Driven by the external clock harness; the queue never
// self-schedules.
func (q *Queue[T]) StepWriteDomain() {
	q.stepWriteDomain()
}

// StepReadDomain advances the read domain by one scheduling step,
// shifting the write pointer one stage further through the read-side
// synchronizer.
func (q *Queue[T]) StepReadDomain() {
	q.stepReadDomain()
}

// Reset zeroes both position counters and reloads every synchronizer
// stage, discarding in-flight samples. Stored items are not cleared; the
// pointers no longer reference them.
//
// Like a hardware reset, Reset must be applied while both domains are
// quiescent; it must not race with TryWrite, TryRead, or stepping.
func (q *Queue[T]) Reset() {
	q.resetCore()
}

// Status reports the flag set and occupancy estimate. Full, AlmostFull,
// Occupancy, and Free carry the write domain's view; Empty and
// AlmostEmpty carry the read domain's. Each figure is exactly what the
// corresponding domain would act on.
//
// Status reads both domains' state and must be called while both domains
// are quiescent, e.g. by the step harness between ticks.
func (q *Queue[T]) Status() Status {
	return q.status()
}

// Cap returns the queue depth.
func (q *Queue[T]) Cap() int {
	return q.capacity()
}
