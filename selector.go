// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

import "math/bits"

// useXNOR reports whether the XNOR chain has to be used for the word w. This
// is the case if at least four of the bits 1..7 are set.
//
// Every set bit in w[1..7] is a transition of the XOR chain and every unset
// bit a transition of the XNOR chain. Since seven bits are counted the two
// chains never have the same number of transitions.
func useXNOR(w byte) bool {
	return bits.OnesCount8(w&^1) >= 4
}

// useXNORDirect reports whether the XNOR chain has fewer transitions than
// the XOR chain by counting them. On a tie the XOR chain is used. The result
// must be the same as the one of useXNOR for every word.
func useXNORDirect(w byte) bool {
	xor, xnor := candidates(w)
	return countTransitions(uint16(xnor), 8) <
		countTransitions(uint16(xor), 8)
}

// selectChain returns the chain for w with the fewer transitions. The flag
// xor is true if the XOR chain has been selected.
func selectChain(w byte) (c byte, xor bool) {
	c = xorChain(w)
	if useXNOR(w) {
		return c ^ oddBits, false
	}
	return c, true
}
