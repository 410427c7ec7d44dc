// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdcq

import "code.hybscloud.com/atomix"

// synchronizer imports one domain's published Gray pointer into the other
// domain. It models the N-stage flip-flop pipeline used to resolve
// metastability in hardware: stage 0 samples the live source register,
// each destination-domain step shifts the pipeline by one, and only the
// last stage is considered settled.
//
// The pipeline stages are plain memory because they are owned and touched
// exclusively by the destination domain; the single cross-domain access is
// the acquire load of the source register in step. Because the source only
// ever publishes Gray codes, a sample taken mid-transition is either the
// previous or the next code, never more than one increment away and never
// a torn multi-bit combination.
//
// A nil stage slice selects the synchronous degenerate mode: settled reads
// the source directly with zero latency. The rest of the model is shared.
type synchronizer struct {
	source *atomix.Uint64 // the remote pointerEngine's published register
	stages []uint64       // destination-owned; stages[len-1] is settled
}

func newSynchronizer(source *atomix.Uint64, stages int) synchronizer {
	s := synchronizer{source: source}
	if stages > 0 {
		s.stages = make([]uint64, stages)
	}
	return s
}

// step advances the pipeline by one destination-domain step: each stage
// takes its predecessor's previous value and stage 0 resamples the source.
// A source change therefore becomes settled only after len(stages)
// destination steps. No-op in synchronous mode.
func (s *synchronizer) step() {
	for i := len(s.stages) - 1; i > 0; i-- {
		s.stages[i] = s.stages[i-1]
	}
	if len(s.stages) > 0 {
		s.stages[0] = s.source.LoadAcquire()
	}
}

// settled returns the destination domain's current view of the remote
// Gray pointer: the last pipeline stage, or the live source value in
// synchronous mode.
func (s *synchronizer) settled() uint64 {
	if len(s.stages) == 0 {
		return s.source.LoadAcquire()
	}
	return s.stages[len(s.stages)-1]
}

// reset reloads every stage with v, discarding in-flight samples.
func (s *synchronizer) reset(v uint64) {
	for i := range s.stages {
		s.stages[i] = v
	}
}
