// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package cdcq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent two-domain tests, which trigger false
// positives: the detector cannot observe happens-before edges established
// through atomic acquire-release on the Gray pointer registers.
const RaceEnabled = true
