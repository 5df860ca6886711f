// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

// oddBits has all odd bit positions of a byte set.
const oddBits = 0xaa

// xorChain computes the chain c[0] = w[0], c[n] = c[n-1] ^ w[n]. This is the
// prefix XOR of the word starting at bit 0.
func xorChain(w byte) byte {
	c := w
	c ^= c << 1
	c ^= c << 2
	c ^= c << 4
	return c
}

// xnorChain computes the chain c[0] = w[0], c[n] = ^(c[n-1] ^ w[n]). The
// complement alternates along the chain, so the result is the XOR chain with
// the odd bits complemented.
func xnorChain(w byte) byte {
	return xorChain(w) ^ oddBits
}

// candidates returns both chains for the word w.
func candidates(w byte) (xor, xnor byte) {
	xor = xorChain(w)
	return xor, xor ^ oddBits
}

// unchain reverses xorChain: w[0] = c[0], w[n] = c[n-1] ^ c[n].
func unchain(c byte) byte {
	return c ^ c<<1
}
