// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdcq

import (
	"code.hybscloud.com/atomix"

	"code.hybscloud.com/cdcq/internal/gray"
)

// pointerEngine is the per-domain position counter.
//
// The binary counter is owned exclusively by its domain and advances mod
// 2*depth; the extra bit above the index range disambiguates full from
// empty after wraparound. Only the Gray-coded form is published for the
// other domain's synchronizer to sample. Publication uses a release store
// paired with the synchronizer's acquire load, so the storage write that
// preceded an advance is visible before the advanced pointer is.
type pointerEngine struct {
	counter uint64        // domain-local, [0, 2*depth)
	encoded atomix.Uint64 // published Gray form, the only value that crosses domains
	mask    uint64        // 2*depth - 1
}

// advance moves the counter by one accepted operation and republishes
// its Gray form. Callers must have already consulted the flag evaluator;
// advance itself is unconditional.
func (p *pointerEngine) advance() {
	p.counter = (p.counter + 1) & p.mask
	p.encoded.StoreRelease(gray.Encode(p.counter))
}

// index returns the storage slot for the current (pre-advance) operation.
func (p *pointerEngine) index(depthMask uint64) uint64 {
	return p.counter & depthMask
}

// reset returns the engine to its initial state. Both domains must be
// quiescent; see Reset on the queue types.
func (p *pointerEngine) reset() {
	p.counter = 0
	p.encoded.Store(0)
}
