// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdcq

// Storage is the backing array collaborator: an addressable mapping from
// slot index to item with unit-latency access. The queue drives it with
// non-overlapping index sets — the write domain only writes the slot at
// its own pointer, and the read domain only reads slots already committed
// by a completed write — so implementations need no internal locking.
//
// After a successful read the queue writes the zero value back to the
// consumed slot to release any references held by the stored item.
//
// The default implementation is a plain slice; external implementations
// (memory-mapped regions, instrumented models) can be supplied with
// NewQueueWith or BuildWith.
type Storage[T any] interface {
	// Write stores item at index. Index is always in [0, depth).
	Write(index int, item T)

	// Read returns the item at index. Index is always in [0, depth).
	Read(index int) T
}

// sliceStorage is the built-in slice-backed Storage.
type sliceStorage[T any] []T

func newSliceStorage[T any](depth int) *sliceStorage[T] {
	s := make(sliceStorage[T], depth)
	return &s
}

func (s *sliceStorage[T]) Write(index int, item T) {
	(*s)[index] = item
}

func (s *sliceStorage[T]) Read(index int) T {
	return (*s)[index]
}
