// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

// Stats collects statistics about a symbol stream as seen on the serial
// line.
type Stats struct {
	// Symbols gives the number of symbols.
	Symbols int64
	// Transitions counts the bit changes on the line including the
	// changes between the last bit of a symbol and the first bit of
	// the next one.
	Transitions int64
	// Resets counts the resets of the encoder bias. Readers can't see
	// resets; the field stays zero for them.
	Resets int64
	// Disparity is the sum of the biases of all symbols. It isn't
	// affected by encoder resets.
	Disparity int
	// MinDisparity and MaxDisparity record the extreme values of
	// Disparity. The balanced line before the first symbol counts, so
	// MinDisparity is never positive and MaxDisparity never negative.
	MinDisparity int
	MaxDisparity int

	last Symbol
}

// Add updates the statistics for the symbol s following the symbols already
// added.
func (st *Stats) Add(s Symbol) {
	s &= maxSymbol
	st.Transitions += int64(s.Transitions())
	if st.Symbols > 0 && (st.last>>(SymbolBits-1))&1 != s&1 {
		st.Transitions++
	}
	st.Symbols++
	st.last = s

	st.Disparity += s.Bias()
	if st.Disparity < st.MinDisparity {
		st.MinDisparity = st.Disparity
	}
	if st.Disparity > st.MaxDisparity {
		st.MaxDisparity = st.Disparity
	}
}

// Merge adds the statistics of another stream to st. The streams are
// regarded as separate lines: no transition between them is counted and
// the disparity extremes are the extremes of the two streams.
func (st *Stats) Merge(other Stats) {
	st.Symbols += other.Symbols
	st.Transitions += other.Transitions
	st.Resets += other.Resets
	st.Disparity += other.Disparity
	if other.MinDisparity < st.MinDisparity {
		st.MinDisparity = other.MinDisparity
	}
	if other.MaxDisparity > st.MaxDisparity {
		st.MaxDisparity = other.MaxDisparity
	}
}
