// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

// Decode returns the word encoded by the symbol s. Bits above bit 9 are
// ignored. The running bias of the encoder is not required.
func Decode(s Symbol) byte {
	c := s.Data()
	if s.Inverted() {
		c = ^c
	}
	if !s.XOR() {
		c ^= oddBits
	}
	return unchain(c)
}

// DecodeSlice appends the words for the symbols in s to dst and returns the
// extended slice.
func DecodeSlice(dst []byte, s []Symbol) []byte {
	for _, x := range s {
		dst = append(dst, Decode(x))
	}
	return dst
}
