// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdcq

// Flag evaluation operates on binary counters in [0, 2*depth): the locally
// owned counter at full precision and the remote counter decoded from the
// synchronizer's settled Gray value.
//
// The settled remote value lags the true remote counter by up to the
// synchronizer depth. The bias is always in the safe direction: a stale
// read pointer makes the writer over-estimate occupancy (spurious full,
// never a lost-slot overwrite) and a stale write pointer makes the reader
// under-estimate it (spurious empty, never a read of an uncommitted slot).

// isFull reports the writer-side full condition: the index bits of the two
// counters are equal while the wraparound bits differ, meaning the writer
// is exactly one lap ahead of the last-known read position. With counters
// mod 2*depth that collapses to the counters differing in only the top bit.
func isFull(local, syncedRemote, depth uint64) bool {
	return local^syncedRemote == depth
}

// isEmpty reports the reader-side empty condition: all bits equal,
// wraparound bit included.
func isEmpty(local, syncedRemote uint64) bool {
	return local == syncedRemote
}

// distance returns (lead - lag) mod 2*depth, the occupancy estimate seen
// by whichever domain supplied the lead counter. The full/empty gating
// keeps the result in [0, depth].
func distance(lead, lag, wrapMask uint64) uint64 {
	return (lead - lag) & wrapMask
}

// almostFull reports whether the writer-side free-slot estimate has fallen
// to the configured threshold. Conservative: staleness can only shrink the
// free estimate, so the flag may assert early but never deasserts late.
func almostFull(writeCounter, syncedRead, depth, wrapMask uint64, threshold int) bool {
	if threshold < 0 {
		return false
	}
	free := depth - distance(writeCounter, syncedRead, wrapMask)
	return free <= uint64(threshold)
}

// almostEmpty reports whether the reader-side occupancy estimate has
// fallen to the configured threshold. Conservative in the same direction:
// staleness can only shrink the reader's occupancy estimate.
func almostEmpty(readCounter, syncedWrite, wrapMask uint64, threshold int) bool {
	if threshold < 0 {
		return false
	}
	return distance(syncedWrite, readCounter, wrapMask) <= uint64(threshold)
}
