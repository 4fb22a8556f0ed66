// Package simdscan provides find-equal / find-greater-than primitives over
// a fixed-width byte vector with an active count, as used by Node16/Node32
// to locate and position children without a full binary search.
//
// This is the scalar reference implementation only. The teacher package
// this is grounded on (flier-goutil/pkg/arena/art/simd) declares AVX2
// variants via //go:noescape asm stubs, but ships no corresponding .s file
// in any retrieved source — that assembly was never actually present to
// port. Rather than fabricate it, this package exposes [HaveAVX2] as a
// capability flag that is always false, so callers take the portable path
// unconditionally (see the Node16 growth rule in package artnode).
package simdscan

// NotFound is the sentinel returned by FindEq and FindGT.
const NotFound = -1

// HaveAVX2 reports whether a vectorized implementation is available. This
// build only has the scalar fallback, so it is always false; Node32 is
// consequently unreachable from Node16 growth and is only produced by
// direct construction (tests, or a future build with a real AVX2 path).
const HaveAVX2 = false

// FindEq returns the position of the first byte equal to c among
// vec[0:w], or NotFound.
func FindEq(c byte, vec []byte, w int) int {
	for i := 0; i < w; i++ {
		if vec[i] == c {
			return i
		}
	}
	return NotFound
}

// FindGT returns the position of the first byte strictly greater than c
// among vec[0:w], or NotFound if none is.
func FindGT(c byte, vec []byte, w int) int {
	for i := 0; i < w; i++ {
		if vec[i] > c {
			return i
		}
	}
	return NotFound
}
