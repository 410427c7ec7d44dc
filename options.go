// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdcq

import "unsafe"

// DefaultStages is the synchronizer pipeline depth used when none is
// configured. Two stages is the conventional minimum for metastability
// resolution.
const DefaultStages = 2

// Options configures queue construction.
type Options struct {
	// Capacity in items; must be a power of two >= 2.
	depth int

	// Synchronizer pipeline depth per crossing direction (>= 1).
	stages int

	// Flag thresholds; negative means the flag is not computed.
	almostFull  int
	almostEmpty int

	// Zero-latency single-domain mode: bypass the synchronizers.
	synchronous bool
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Depth-8 queue with default 2-stage synchronizers
//	q := cdcq.Build[Sample](cdcq.New(8))
//
//	// Deeper synchronizers and an almost-full watermark
//	q := cdcq.Build[Sample](cdcq.New(1024).Stages(3).AlmostFull(16))
//
//	// Synchronous degenerate mode (single timing domain)
//	q := cdcq.New(64).Synchronous().BuildIndirect()
type Builder struct {
	opts Options
}

// New creates a queue builder with the given depth.
//
// Depth must be a power of two >= 2; pointer width is log2(depth)+1 bits
// and the extra bit disambiguates full from empty after wraparound, which
// is why non-power-of-two depths are rejected rather than rounded.
//
// Panics if depth is not a power of two >= 2.
func New(depth int) *Builder {
	if depth < 2 || depth&(depth-1) != 0 {
		panic("cdcq: depth must be a power of two >= 2")
	}
	return &Builder{opts: Options{
		depth:       depth,
		stages:      DefaultStages,
		almostFull:  -1,
		almostEmpty: -1,
	}}
}

// Stages sets the synchronizer pipeline depth per crossing direction.
// Deeper pipelines model longer settling windows at the cost of staleness.
// Panics if n < 1.
func (b *Builder) Stages(n int) *Builder {
	if n < 1 {
		panic("cdcq: synchronizer stages must be >= 1")
	}
	b.opts.stages = n
	return b
}

// Synchronous selects the zero-synchronization-latency degenerate mode:
// both pointer engines are sampled live, as if producer and consumer
// shared one timing domain. Stepping methods become no-ops.
func (b *Builder) Synchronous() *Builder {
	b.opts.synchronous = true
	return b
}

// AlmostFull enables the almost-full flag: Status reports AlmostFull when
// the writer-side free-slot estimate is <= threshold.
// Panics unless 0 <= threshold < depth.
func (b *Builder) AlmostFull(threshold int) *Builder {
	if threshold < 0 || threshold >= b.opts.depth {
		panic("cdcq: almost-full threshold must be in [0, depth)")
	}
	b.opts.almostFull = threshold
	return b
}

// AlmostEmpty enables the almost-empty flag: Status reports AlmostEmpty
// when the reader-side occupancy estimate is <= threshold.
// Panics unless 0 <= threshold < depth.
func (b *Builder) AlmostEmpty(threshold int) *Builder {
	if threshold < 0 || threshold >= b.opts.depth {
		panic("cdcq: almost-empty threshold must be in [0, depth)")
	}
	b.opts.almostEmpty = threshold
	return b
}

// pipelineStages returns the per-direction synchronizer depth, with 0
// selecting the synchronous passthrough.
func (o *Options) pipelineStages() int {
	if o.synchronous {
		return 0
	}
	return o.stages
}

// Build creates a Queue[T] with built-in slice storage.
func Build[T any](b *Builder) *Queue[T] {
	return BuildWith[T](b, newSliceStorage[T](b.opts.depth))
}

// BuildWith creates a Queue[T] backed by an external Storage collaborator.
// The storage must address at least depth slots.
func BuildWith[T any](b *Builder, storage Storage[T]) *Queue[T] {
	if storage == nil {
		panic("cdcq: storage must not be nil")
	}
	return newQueue[T](b.opts, storage)
}

// BuildIndirect creates a QueueIndirect for uintptr values.
func (b *Builder) BuildIndirect() *QueueIndirect {
	return newQueueIndirect(b.opts)
}

// BuildPtr creates a QueuePtr for unsafe.Pointer values.
func (b *Builder) BuildPtr() *QueuePtr {
	return newQueuePtr(b.opts)
}

// NewQueue creates a Queue[T] with the default 2-stage synchronizers.
// Panics if depth is not a power of two >= 2.
func NewQueue[T any](depth int) *Queue[T] {
	return Build[T](New(depth))
}

// NewQueueWith creates a Queue[T] over an external Storage collaborator
// with the default 2-stage synchronizers.
// Panics if depth is not a power of two >= 2.
func NewQueueWith[T any](depth int, storage Storage[T]) *Queue[T] {
	return BuildWith[T](New(depth), storage)
}

// NewQueueIndirect creates a QueueIndirect with the default 2-stage
// synchronizers. Panics if depth is not a power of two >= 2.
func NewQueueIndirect(depth int) *QueueIndirect {
	return New(depth).BuildIndirect()
}

// NewQueuePtr creates a QueuePtr with the default 2-stage synchronizers.
// Panics if depth is not a power of two >= 2.
func NewQueuePtr(depth int) *QueuePtr {
	return New(depth).BuildPtr()
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing between the two
// domains' state.
type pad [64]byte
