// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

import (
	"errors"
	"fmt"
)

// Format describes how symbols are stored in a byte stream.
type Format byte

// Supported formats.
const (
	// Packed stores every symbol in ten bits. The bits are filled into
	// the bytes starting with the least significant bit. Four symbols
	// use five bytes. The last byte is padded with zero bits.
	Packed Format = iota
	// Wide stores every symbol as a little-endian 16-bit value.
	Wide
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case Packed:
		return "packed"
	case Wide:
		return "wide"
	}
	return fmt.Sprintf("Format(%d)", byte(f))
}

// verify checks whether f is a supported format.
func (f Format) verify() error {
	if f > Wide {
		return errors.New("tmds: unsupported format")
	}
	return nil
}

// ParseFormat returns the format for the name returned by Format.String.
func ParseFormat(s string) (f Format, err error) {
	switch s {
	case "packed":
		return Packed, nil
	case "wide":
		return Wide, nil
	}
	return 0, fmt.Errorf("tmds: unknown format %q", s)
}

// encodedLen returns the number of bytes required for n symbols.
func (f Format) encodedLen(n int) int {
	if f == Wide {
		return 2 * n
	}
	return (n*SymbolBits + 7) / 8
}
