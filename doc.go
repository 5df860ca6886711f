// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tmds implements the 8b/10b line code TMDS (Transition-Minimized
// Differential Signaling) used by DVI and HDMI links.
//
// Every 8-bit word is converted into a 10-bit [Symbol]. Bits 0-7 carry the
// word transformed by an XOR or XNOR chain, whichever has fewer transitions,
// and possibly inverted to keep the DC balance of the line. Bit 8 records
// the chain and bit 9 the inversion. The encoder keeps a running bias across
// words; the decoder needs only the symbol itself.
//
// An [Encoder] must be used for exactly one channel and by one goroutine at a
// time. [Decode] and [EncodeWord] are pure functions.
//
// The [Writer] and [Reader] types wrap the code for byte streams. The
// symbols are either packed into 10 bits each or stored as little-endian
// 16-bit values.
//
// Control-period symbols and the synchronization of multiple channels are
// not provided by the package.
package tmds
