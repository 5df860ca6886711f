// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

// Symbol is a 10-bit TMDS symbol. Bit 0 is transmitted first.
type Symbol uint16

// Bits of a symbol.
const (
	// DataBits covers the eight data bits 0-7.
	DataBits Symbol = 0xff
	// SelectorBit is set if the XOR chain has been used and unset for
	// the XNOR chain.
	SelectorBit Symbol = 1 << 8
	// InvertBit is set if the data bits have been inverted.
	InvertBit Symbol = 1 << 9
)

// SymbolBits gives the number of bits of a symbol.
const SymbolBits = 10

// maxSymbol is the largest valid symbol value.
const maxSymbol Symbol = 1<<SymbolBits - 1

// Valid checks that no bit above bit 9 is set.
func (s Symbol) Valid() bool { return s <= maxSymbol }

// Data returns bits 0-7 of the symbol as transmitted.
func (s Symbol) Data() byte { return byte(s) }

// XOR reports whether the selector bit is set.
func (s Symbol) XOR() bool { return s&SelectorBit != 0 }

// Inverted reports whether the invert bit is set.
func (s Symbol) Inverted() bool { return s&InvertBit != 0 }

// Bias returns the number of ones minus the number of zeros in the ten bits
// of the symbol.
func (s Symbol) Bias() int { return bitBias(uint16(s), SymbolBits) }

// Transitions returns the number of transitions between the ten bits of the
// symbol.
func (s Symbol) Transitions() int {
	return countTransitions(uint16(s), SymbolBits)
}

// String returns the ten bits of the symbol in transmission order with bit
// 0 at the left.
func (s Symbol) String() string {
	var a [SymbolBits]byte
	for i := range a {
		a[i] = '0' + byte(s>>uint(i)&1)
	}
	return string(a[:])
}
