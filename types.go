// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdcq

import "unsafe"

// Status is a snapshot of the queue's flags and occupancy estimate.
//
// Full, AlmostFull, Occupancy, and Free are computed from the write
// domain's view (local write counter vs. synchronized read pointer);
// Empty and AlmostEmpty from the read domain's. Synchronizer staleness
// biases every figure in the conservative direction: occupancy is never
// under-reported to the writer and never over-reported to the reader.
type Status struct {
	// Full reports the writer-side full condition.
	Full bool

	// Empty reports the reader-side empty condition.
	Empty bool

	// AlmostFull reports free slots at or below the configured
	// threshold. Always false unless AlmostFull was configured.
	AlmostFull bool

	// AlmostEmpty reports occupied slots at or below the configured
	// threshold. Always false unless AlmostEmpty was configured.
	AlmostEmpty bool

	// Occupancy is the writer-side occupancy estimate, in [0, depth].
	Occupancy int

	// Free is depth minus Occupancy.
	Free int
}

// Writer is the producer-role interface: the write domain's half of a
// queue. One goroutine or one externally driven step loop owns it.
type Writer[T any] interface {
	// TryWrite appends an item, or returns ErrFull with no side effects.
	TryWrite(elem *T) error

	// StepWriteDomain advances the write domain by one scheduling step.
	StepWriteDomain()
}

// Reader is the consumer-role interface: the read domain's half of a
// queue. One goroutine or one externally driven step loop owns it.
type Reader[T any] interface {
	// TryRead removes and returns the oldest item, or returns ErrEmpty
	// with no side effects.
	TryRead() (T, error)

	// StepReadDomain advances the read domain by one scheduling step.
	StepReadDomain()
}

// WriterIndirect is the producer-role interface for uintptr queues.
type WriterIndirect interface {
	TryWrite(elem uintptr) error
	StepWriteDomain()
}

// ReaderIndirect is the consumer-role interface for uintptr queues.
type ReaderIndirect interface {
	TryRead() (uintptr, error)
	StepReadDomain()
}

// WriterPtr is the producer-role interface for unsafe.Pointer queues.
type WriterPtr interface {
	TryWrite(elem unsafe.Pointer) error
	StepWriteDomain()
}

// ReaderPtr is the consumer-role interface for unsafe.Pointer queues.
type ReaderPtr interface {
	TryRead() (unsafe.Pointer, error)
	StepReadDomain()
}
