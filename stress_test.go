// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdcq_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/cdcq"
)

// =============================================================================
// Two-Domain Stress Tests
//
// The write domain and the read domain run as two free-running goroutines,
// each stepping its own side at its own rate. This is the closest software
// model of two uncorrelated clocks: no shared tick, no rendezvous, only
// the Gray-coded pointers crossing through the synchronizers.
// =============================================================================

// TestTwoDomainStress drives a Queue[int] from two free-running domains
// and verifies every item arrives exactly once, in order.
func TestTwoDomainStress(t *testing.T) {
	if cdcq.RaceEnabled {
		t.Skip("skip: cross-domain ordering uses atomic acquire-release the race detector cannot track")
	}

	const (
		depth      = 16
		totalItems = 200000
		timeout    = 10 * time.Second
	)

	q := cdcq.Build[int](cdcq.New(depth).Stages(2))

	var wg sync.WaitGroup
	var timedOut atomix.Bool
	deadline := time.Now().Add(timeout)

	wg.Add(1)
	go func() { // Write domain
		defer wg.Done()
		backoff := iox.Backoff{}
		sw := spin.Wait{}
		for i := range totalItems {
			v := i
			q.StepWriteDomain()
			for q.TryWrite(&v) != nil {
				if time.Now().After(deadline) {
					timedOut.Store(true)
					return
				}
				q.StepWriteDomain()
				backoff.Wait()
			}
			backoff.Reset()
			// Decorrelate the two domains' rates.
			if i%7 == 0 {
				sw.Once()
			}
		}
	}()

	wg.Add(1)
	go func() { // Read domain
		defer wg.Done()
		backoff := iox.Backoff{}
		sw := spin.Wait{}
		next := 0
		for next < totalItems {
			q.StepReadDomain()
			v, err := q.TryRead()
			if err != nil {
				if time.Now().After(deadline) {
					timedOut.Store(true)
					return
				}
				backoff.Wait()
				continue
			}
			backoff.Reset()
			if v != next {
				t.Errorf("out of order: got %d, want %d", v, next)
				return
			}
			next++
			if next%5 == 0 {
				sw.Once()
			}
		}
	}()

	wg.Wait()
	if timedOut.Load() {
		t.Fatal("timed out")
	}

	// Everything consumed: the queue settles empty.
	for range 2 {
		q.StepWriteDomain()
		q.StepReadDomain()
	}
	if st := q.Status(); !st.Empty || st.Occupancy != 0 {
		t.Fatalf("final status: got %+v, want empty", st)
	}
}

// TestTwoDomainStressIndirect is the same workload over the uintptr flavor.
func TestTwoDomainStressIndirect(t *testing.T) {
	if cdcq.RaceEnabled {
		t.Skip("skip: cross-domain ordering uses atomic acquire-release the race detector cannot track")
	}

	const (
		depth      = 8
		totalItems = 200000
		timeout    = 10 * time.Second
	)

	q := cdcq.New(depth).Stages(2).BuildIndirect()

	var wg sync.WaitGroup
	var timedOut atomix.Bool
	deadline := time.Now().Add(timeout)

	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := range totalItems {
			q.StepWriteDomain()
			for q.TryWrite(uintptr(i)) != nil {
				if time.Now().After(deadline) {
					timedOut.Store(true)
					return
				}
				q.StepWriteDomain()
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		next := uintptr(0)
		for next < totalItems {
			q.StepReadDomain()
			v, err := q.TryRead()
			if err != nil {
				if time.Now().After(deadline) {
					timedOut.Store(true)
					return
				}
				backoff.Wait()
				continue
			}
			backoff.Reset()
			if v != next {
				t.Errorf("out of order: got %d, want %d", v, next)
				return
			}
			next++
		}
	}()

	wg.Wait()
	if timedOut.Load() {
		t.Fatal("timed out")
	}
}
