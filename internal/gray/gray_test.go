// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gray_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"code.hybscloud.com/cdcq/internal/gray"
)

// TestEncodeAdjacency verifies the single-bit-delta property exhaustively
// for small widths, including the wraparound pair (2^w-1, 0). This is the
// property every cross-domain sample in the queue depends on.
func TestEncodeAdjacency(t *testing.T) {
	for width := 1; width <= 16; width++ {
		mask := uint64(1)<<width - 1
		for c := uint64(0); c <= mask; c++ {
			a := gray.Encode(c)
			b := gray.Encode((c + 1) & mask)
			if d := bits.OnesCount64(a ^ b); d != 1 {
				t.Fatalf("width %d: Encode(%d)=%b and Encode(%d)=%b differ in %d bits, want 1",
					width, c, a, (c+1)&mask, b, d)
			}
		}
	}
}

// TestEncodeBijection verifies Encode is a bijection on [0, 2^w).
func TestEncodeBijection(t *testing.T) {
	const width = 16
	seen := make([]bool, 1<<width)
	for c := uint64(0); c < 1<<width; c++ {
		g := gray.Encode(c)
		if g >= 1<<width {
			t.Fatalf("Encode(%d)=%d exceeds width %d", c, g, width)
		}
		if seen[g] {
			t.Fatalf("Encode(%d)=%d already produced by an earlier input", c, g)
		}
		seen[g] = true
	}
}

// TestRoundTrip verifies Decode(Encode(c)) == c, exhaustively for 20 bits
// and randomized over the full 64-bit range.
func TestRoundTrip(t *testing.T) {
	for c := uint64(0); c < 1<<20; c++ {
		if got := gray.Decode(gray.Encode(c)); got != c {
			t.Fatalf("round trip: got %d, want %d", got, c)
		}
	}

	rng := rand.New(rand.NewSource(1))
	for range 100000 {
		c := rng.Uint64()
		if got := gray.Decode(gray.Encode(c)); got != c {
			t.Fatalf("round trip: got %d, want %d", got, c)
		}
	}
}

// TestKnownCodes pins the first few encodings to the textbook sequence.
func TestKnownCodes(t *testing.T) {
	want := []uint64{0b000, 0b001, 0b011, 0b010, 0b110, 0b111, 0b101, 0b100}
	for c, g := range want {
		if got := gray.Encode(uint64(c)); got != g {
			t.Fatalf("Encode(%d): got %b, want %b", c, got, g)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	var sink uint64
	for i := range b.N {
		sink = gray.Encode(uint64(i))
	}
	_ = sink
}

func BenchmarkDecode(b *testing.B) {
	var sink uint64
	for i := range b.N {
		sink = gray.Decode(uint64(i))
	}
	_ = sink
}
