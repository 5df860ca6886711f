// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

import "github.com/ulikunitz/tmds/internal/xlog"

// EncodeWord encodes the word w for a channel with the given running bias.
// It returns the symbol and the running bias after the symbol.
func EncodeWord(w byte, bias int) (s Symbol, newBias int) {
	c, xor := selectChain(w)
	return balance(c, xor, bias)
}

// Encoder encodes the words of a single channel. It keeps the running bias
// of the channel between calls. The zero value is ready to use.
//
// The words must be encoded in transmission order. An Encoder must not be
// used by multiple goroutines at the same time.
type Encoder struct {
	bias int
}

// Encode encodes the next word of the channel.
func (e *Encoder) Encode(w byte) Symbol {
	s, bias := EncodeWord(w, e.bias)
	if debug != nil {
		xlog.Printf(debug, "E 0x%02x %s %3d -> %3d\n",
			w, s, e.bias, bias)
	}
	e.bias = bias
	return s
}

// EncodeSlice appends the symbols for the words in p to dst and returns the
// extended slice.
func (e *Encoder) EncodeSlice(dst []Symbol, p []byte) []Symbol {
	bias := e.bias
	for _, w := range p {
		var s Symbol
		s, bias = EncodeWord(w, bias)
		dst = append(dst, s)
	}
	e.bias = bias
	return dst
}

// Bias returns the running bias of the channel.
func (e *Encoder) Bias() int { return e.bias }

// Reset sets the running bias back to zero. It must be called whenever the
// link is resynchronized, for instance after a control period.
func (e *Encoder) Reset() {
	if debug != nil {
		xlog.Printf(debug, "E reset at bias %d\n", e.bias)
	}
	e.bias = 0
}
