// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gray implements the reflected binary (Gray) code transform.
//
// Gray code is the property the whole clock-domain crossing design rests
// on: encodings of consecutive integers differ in exactly one bit, so a
// value sampled mid-transition by another domain can only be the old value
// or the new value, never a torn multi-bit combination.
package gray

// Encode converts a binary value to its Gray code.
// Pure, total, bijective on [0, 2^w) for any width w.
func Encode(v uint64) uint64 {
	return v ^ v>>1
}

// Decode converts a Gray code back to binary.
// Inverse of Encode: each binary bit is the XOR of all Gray bits at or
// above it, computed with a logarithmic shift fold.
func Decode(g uint64) uint64 {
	g ^= g >> 32
	g ^= g >> 16
	g ^= g >> 8
	g ^= g >> 4
	g ^= g >> 2
	g ^= g >> 1
	return g
}
