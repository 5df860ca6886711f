// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// refEncode encodes the word bit by bit following the definition of the
// code. The transition counts decide the chain.
func refEncode(w byte, bias int) (s Symbol, newBias int) {
	var d [8]bool
	for i := range d {
		d[i] = (w>>uint(i))&1 == 1
	}
	var qx, qn [8]bool
	qx[0], qn[0] = d[0], d[0]
	for i := 1; i < 8; i++ {
		qx[i] = qx[i-1] != d[i]
		qn[i] = !(qn[i-1] != d[i])
	}
	transitions := func(q [8]bool) int {
		k := 0
		for i := 1; i < 8; i++ {
			if q[i] != q[i-1] {
				k++
			}
		}
		return k
	}
	q, xor := qx, true
	if transitions(qn) < transitions(qx) {
		q, xor = qn, false
	}
	cb := 0
	for _, b := range q {
		if b {
			cb++
		} else {
			cb--
		}
	}
	var invert bool
	switch {
	case bias == 0 || cb == 0:
		invert = !xor
	case bias < 0 && cb > 0, bias > 0 && cb < 0:
		invert = true
	}
	var out [10]bool
	for i, b := range q {
		out[i] = b != invert
	}
	out[8], out[9] = xor, invert
	newBias = bias
	for i, b := range out {
		if b {
			s |= 1 << uint(i)
			newBias++
		} else {
			newBias--
		}
	}
	return s, newBias
}

func TestEncodeWordReference(t *testing.T) {
	for bias := -20; bias <= 20; bias++ {
		for i := 0; i < 256; i++ {
			w := byte(i)
			s, b := EncodeWord(w, bias)
			rs, rb := refEncode(w, bias)
			if s != rs || b != rb {
				t.Fatalf("EncodeWord(%#02x, %d) = %s, %d;"+
					" want %s, %d", w, bias, s, b, rs, rb)
			}
		}
	}
}

func TestWorkedExamples(t *testing.T) {
	tests := []struct {
		w    byte
		bias int
		s    Symbol
		str  string
		want int
	}{
		{0x00, 0, 0x100, "0000000010", -8},
		{0xff, 0, 0x200, "0000000001", -8},
	}
	for _, tc := range tests {
		s, b := EncodeWord(tc.w, tc.bias)
		if s != tc.s {
			t.Errorf("EncodeWord(%#02x, %d) symbol %#03x; want %#03x",
				tc.w, tc.bias, uint16(s), uint16(tc.s))
		}
		if s.String() != tc.str {
			t.Errorf("EncodeWord(%#02x, %d) symbol %s; want %s",
				tc.w, tc.bias, s, tc.str)
		}
		if b != tc.want {
			t.Errorf("EncodeWord(%#02x, %d) bias %d; want %d",
				tc.w, tc.bias, b, tc.want)
		}
		rs, rb := refEncode(tc.w, tc.bias)
		if rs != s || rb != b {
			t.Errorf("refEncode(%#02x, %d) = %s, %d; want %s, %d",
				tc.w, tc.bias, rs, rb, s, b)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for bias := -10; bias <= 10; bias++ {
		for i := 0; i < 256; i++ {
			w := byte(i)
			s, _ := EncodeWord(w, bias)
			if !s.Valid() {
				t.Fatalf("EncodeWord(%#02x, %d) = %#04x; invalid",
					w, bias, uint16(s))
			}
			if v := Decode(s); v != w {
				t.Fatalf("Decode(%s) = %#02x; want %#02x"+
					" (bias %d)", s, v, w, bias)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	for bias := -10; bias <= 10; bias++ {
		for i := 0; i < 256; i++ {
			s1, b1 := EncodeWord(byte(i), bias)
			s2, b2 := EncodeWord(byte(i), bias)
			if s1 != s2 || b1 != b2 {
				t.Fatalf("EncodeWord(%#02x, %d) not deterministic:"+
					" %s, %d and %s, %d",
					i, bias, s1, b1, s2, b2)
			}
		}
	}
}

// balancedWord returns the first word whose selected chain has no bias and
// uses the requested chain.
func balancedWord(t *testing.T, xor bool) byte {
	for i := 0; i < 256; i++ {
		c, x := selectChain(byte(i))
		if x == xor && bitBias(uint16(c), 8) == 0 {
			return byte(i)
		}
	}
	t.Fatalf("no balanced word for xor=%t", xor)
	return 0
}

func TestControlBitAlternation(t *testing.T) {
	words := []byte{balancedWord(t, true), balancedWord(t, false)}
	var e Encoder
	for i := 0; i < 8; i++ {
		s := e.Encode(words[i%2])
		xor, inv := s.XOR(), s.Inverted()
		wantXOR := i%2 == 0
		if xor != wantXOR || inv != !wantXOR {
			t.Fatalf("symbol %d: %s has control bits (%t,%t);"+
				" want (%t,%t)", i, s, xor, inv,
				wantXOR, !wantXOR)
		}
		if e.Bias() != 0 {
			t.Fatalf("symbol %d: bias %d; want 0", i, e.Bias())
		}
	}
}

func TestTieControlBits(t *testing.T) {
	for i := 0; i < 256; i++ {
		s, _ := EncodeWord(byte(i), 0)
		if s.XOR() == s.Inverted() {
			t.Fatalf("EncodeWord(%#02x, 0) = %s; control bits"+
				" must differ", i, s)
		}
	}
}

// TestInvertSignRule documents that the data bits are inverted if the
// running bias and the bias of the chain have opposite signs, which moves
// the running bias away from zero.
func TestInvertSignRule(t *testing.T) {
	tests := []struct {
		bias int
		s    Symbol
		want int
	}{
		{-8, 0x100, -16},
		{8, 0x3ff, 18},
	}
	for _, tc := range tests {
		s, b := EncodeWord(0x00, tc.bias)
		if s != tc.s || b != tc.want {
			t.Errorf("EncodeWord(0x00, %d) = %s, %d; want %s, %d",
				tc.bias, s, b, tc.s, tc.want)
		}
	}
}

func TestEncoder(t *testing.T) {
	p := []byte("The quick brown fox jumps over the lazy dog.")
	var e Encoder
	bias := 0
	for _, w := range p {
		s := e.Encode(w)
		var want Symbol
		want, bias = EncodeWord(w, bias)
		if s != want {
			t.Fatalf("Encode(%#02x) = %s; want %s", w, s, want)
		}
		if e.Bias() != bias {
			t.Fatalf("Bias() = %d; want %d", e.Bias(), bias)
		}
	}
	e.Reset()
	if e.Bias() != 0 {
		t.Fatalf("Bias() after Reset() = %d; want 0", e.Bias())
	}

	var f Encoder
	syms := f.EncodeSlice(nil, p)
	if f.Bias() != bias {
		t.Fatalf("EncodeSlice bias %d; want %d", f.Bias(), bias)
	}
	q := DecodeSlice(nil, syms)
	if !bytes.Equal(q, p) {
		t.Fatalf("DecodeSlice returned %q; want %q", q, p)
	}
}

// TestEncodeAllocs checks that encoding doesn't allocate while the trace is
// off.
func TestEncodeAllocs(t *testing.T) {
	if debug != nil {
		t.Skip("trace is on")
	}
	p := make([]byte, 256)
	for i := range p {
		p[i] = byte(i)
	}

	var e Encoder
	if n := testing.AllocsPerRun(100, func() {
		for _, w := range p {
			e.Encode(w)
		}
		e.Reset()
	}); n != 0 {
		t.Errorf("Encoder.Encode: %v allocations per run; want 0", n)
	}

	syms := make([]Symbol, 0, len(p))
	if n := testing.AllocsPerRun(100, func() {
		syms = e.EncodeSlice(syms[:0], p)
	}); n != 0 {
		t.Errorf("Encoder.EncodeSlice: %v allocations per run; want 0", n)
	}

	for _, f := range []Format{Packed, Wide} {
		w, err := NewWriterConfig(io.Discard, WriterConfig{Format: f})
		if err != nil {
			t.Fatalf("NewWriterConfig error %s", err)
		}
		if n := testing.AllocsPerRun(100, func() {
			if _, err := w.Write(p); err != nil {
				t.Fatalf("w.Write error %s", err)
			}
		}); n != 0 {
			t.Errorf("Writer.Write (%s): %v allocations per run; want 0",
				f, n)
		}
	}
}

func TestEncoderTrace(t *testing.T) {
	buf := new(bytes.Buffer)
	traceTo(buf, "tmds: ")
	defer traceTo(nil, "")
	var e Encoder
	e.Encode(0)
	e.Reset()
	out := buf.String()
	if !strings.Contains(out, "0000000010") {
		t.Fatalf("trace %q doesn't contain the symbol", out)
	}
	if !strings.Contains(out, "reset at bias -8") {
		t.Fatalf("trace %q doesn't contain the reset", out)
	}
}

func BenchmarkEncoder(b *testing.B) {
	p := make([]byte, 4096)
	for i := range p {
		p[i] = byte(i * 7)
	}
	syms := make([]Symbol, 0, len(p))
	var e Encoder
	b.SetBytes(int64(len(p)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		syms = e.EncodeSlice(syms[:0], p)
	}
}
