// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

import "math/bits"

/* The functions work on the n low-order bits of an uint16 value; bit 0 is
 * the first bit of the sequence. */

// lowMask returns a mask for the n low-order bits.
func lowMask(n int) uint16 {
	return uint16(1)<<uint(n) - 1
}

// countOnes returns the number of set bits among the bits 0..n-1 of x.
func countOnes(x uint16, n int) int {
	return bits.OnesCount16(x & lowMask(n))
}

// countTransitions returns the number of indexes i in 0..n-2 with bit i of x
// differing from bit i+1.
func countTransitions(x uint16, n int) int {
	if n < 2 {
		return 0
	}
	return bits.OnesCount16((x ^ x>>1) & lowMask(n-1))
}

// bitBias returns the number of ones minus the number of zeros among the
// bits 0..n-1 of x.
func bitBias(x uint16, n int) int {
	return 2*countOnes(x, n) - n
}
