// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

// balance builds the symbol for the selected chain c and returns it together
// with the updated running bias.
//
// If either the running bias or the bias of c is zero, the invert bit is the
// complement of the selector bit, so the control bits are 10 or 01 and don't
// add bias. Otherwise the data bits are inverted if the running bias and the
// bias of c have opposite signs. Note that this rule doesn't reduce the
// running bias; see TestInvertSignRule.
func balance(c byte, xor bool, bias int) (s Symbol, newBias int) {
	cb := bitBias(uint16(c), 8)
	var invert bool
	if bias == 0 || cb == 0 {
		invert = !xor
	} else {
		invert = (bias < 0 && cb > 0) || (bias > 0 && cb < 0)
	}

	s = Symbol(c)
	if invert {
		s = Symbol(^c) | InvertBit
	}
	if xor {
		s |= SelectorBit
	}
	return s, bias + s.Bias()
}
