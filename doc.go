// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cdcq provides a bounded FIFO queue with hardware semantics for
// clock-domain crossing (CDC): one producer role and one consumer role
// advancing on independent, unsynchronized timing domains.
//
// The queue models the classic asynchronous FIFO design: each domain owns
// a binary position counter, publishes only its Gray-coded form, and
// imports the other domain's pointer through an N-stage synchronizer
// pipeline. Because consecutive Gray codes differ in exactly one bit, a
// pointer sampled mid-transition is either the previous or the next
// value, never a torn multi-bit combination; because flags are computed
// from the locally owned counter and a stale synchronized remote counter,
// staleness only ever errs toward "fuller" for the writer and "emptier"
// for the reader. No locking is needed: the pointer gating is the
// concurrency control.
//
// # Quick Start
//
// Direct constructors:
//
//	q := cdcq.NewQueue[Sample](1024)
//	q := cdcq.NewQueueIndirect(4096)
//
// Builder API for synchronizer depth, watermarks, and synchronous mode:
//
//	q := cdcq.Build[Sample](cdcq.New(1024).Stages(3).AlmostFull(16))
//	q := cdcq.New(64).Synchronous().BuildIndirect()
//
// # Basic Usage
//
// The queue never self-schedules: an external driver (a clock harness, a
// simulation scheduler, or a pair of goroutines) steps each domain at its
// own rate. Operations are non-blocking and atomic within one step.
//
//	q := cdcq.NewQueue[int](8)
//
//	// Write domain
//	q.StepWriteDomain()
//	v := 42
//	if err := q.TryWrite(&v); cdcq.IsWouldBlock(err) {
//	    // Full - retry after more read-domain progress is synchronized
//	}
//
//	// Read domain
//	q.StepReadDomain()
//	v, err := q.TryRead()
//	if cdcq.IsWouldBlock(err) {
//	    // Empty - retry after more write-domain progress is synchronized
//	}
//
// # Domain Discipline
//
// TryWrite and StepWriteDomain belong to the write domain; TryRead and
// StepReadDomain belong to the read domain. The two sets may run on two
// goroutines concurrently: the only values crossing between them are the
// Gray-coded pointer registers, published with release stores and sampled
// with acquire loads. Reset and Status read both domains and require both
// to be quiescent. Violating the one-writer/one-reader constraint causes
// undefined behavior, as with any single-producer single-consumer queue.
//
// # Synchronization Latency
//
// A pointer change becomes visible to the other domain only after that
// domain has stepped stages times (default 2). A write accepted at writer
// step t is therefore readable no earlier than two reader steps later,
// and a freed slot reaches the writer with the same lag. The flags are
// conservative, never wrong: a stale full or empty costs throughput, not
// correctness.
//
// The Synchronous builder option selects the degenerate single-domain
// mode: the same model with zero synchronization latency, for callers
// that drive both roles from one loop.
//
// # Queue Flavors
//
// Three flavors in the house tradition:
//
//	Build[T] / NewQueue[T]     - generic, copies items through Storage
//	BuildIndirect              - uintptr values (pool indices, handles)
//	BuildPtr                   - unsafe.Pointer, zero-copy ownership transfer
//
// The generic flavor stores through the Storage collaborator interface,
// so the backing array can be external (a memory-mapped region, an
// instrumented model); BuildWith and NewQueueWith accept one.
//
// # Error Handling
//
// TryWrite returns [ErrFull] and TryRead returns [ErrEmpty]; both wrap
// [code.hybscloud.com/iox]'s ErrWouldBlock, so iox-style classification
// applies:
//
//	cdcq.IsWouldBlock(err)  // true if full/empty
//	cdcq.IsSemantic(err)    // true if control flow signal
//	cdcq.IsNonFailure(err)  // true if nil, ErrFull, or ErrEmpty
//
// Construction misuse (depth not a power of two, stages < 1, threshold
// out of range) panics at construction time, before the queue is usable.
//
// # Race Detection
//
// The cross-domain pointer publication uses atomic acquire-release
// ordering on separate variables, which Go's race detector cannot track;
// concurrent tests are gated with //go:build !race and RaceEnabled, as
// elsewhere in the ecosystem.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions in tests.
package cdcq
