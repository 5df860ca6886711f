// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

import (
	"bufio"
	"errors"
	"io"

	"github.com/ulikunitz/tmds/internal/xlog"
)

// Errors returned by the Reader.
var (
	// ErrPadding indicates that the padding bits at the end of a packed
	// stream are not zero.
	ErrPadding = errors.New("tmds: non-zero padding bits")
	// ErrSymbol indicates a symbol with bits above bit 9 set in a wide
	// stream.
	ErrSymbol = errors.New("tmds: symbol out of range")
)

// ReaderConfig provides the configuration parameters for a reader.
type ReaderConfig struct {
	// Format of the symbol stream. (default: Packed)
	Format Format

	// BufferSize is the size of the input buffer in bytes.
	// (default: 4096)
	BufferSize int
}

// ApplyDefaults replaces zero values by their defaults.
func (cfg *ReaderConfig) ApplyDefaults() {
	if cfg.BufferSize == 0 {
		cfg.BufferSize = defaultBufferSize
	}
}

// Verify checks the configuration for errors. Zero values will be replaced
// by default values.
func (cfg *ReaderConfig) Verify() error {
	if cfg == nil {
		return errors.New("tmds: reader configuration is nil")
	}
	cfg.ApplyDefaults()
	if err := cfg.Format.verify(); err != nil {
		return err
	}
	if cfg.BufferSize < 16 {
		return errors.New("tmds: BufferSize must be at least 16")
	}
	return nil
}

// Reader decodes the TMDS symbols of the underlying reader.
type Reader struct {
	cfg   ReaderConfig
	br    *bufio.Reader
	stats Stats

	acc   uint32
	nbits uint

	err error
}

// NewReader creates a reader for the packed format.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, ReaderConfig{})
}

// NewReaderConfig creates a reader using the given configuration.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (*Reader, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return &Reader{
		cfg: cfg,
		br:  bufio.NewReaderSize(r, cfg.BufferSize),
	}, nil
}

// readSymbol reads the next symbol. It returns io.EOF at the regular end of
// the stream.
func (z *Reader) readSymbol() (s Symbol, err error) {
	if z.cfg.Format == Wide {
		var p [2]byte
		if _, err = io.ReadFull(z.br, p[:]); err != nil {
			return 0, err
		}
		s = Symbol(p[0]) | Symbol(p[1])<<8
		if !s.Valid() {
			return 0, ErrSymbol
		}
		return s, nil
	}

	for z.nbits < SymbolBits {
		b, err := z.br.ReadByte()
		if err != nil {
			if err != io.EOF {
				return 0, err
			}
			if z.nbits >= 8 {
				return 0, io.ErrUnexpectedEOF
			}
			if z.acc != 0 {
				return 0, ErrPadding
			}
			return 0, io.EOF
		}
		z.acc |= uint32(b) << z.nbits
		z.nbits += 8
	}
	s = Symbol(z.acc) & maxSymbol
	z.acc >>= SymbolBits
	z.nbits -= SymbolBits
	return s, nil
}

// Read decodes symbols into p. It returns the number of decoded bytes. At
// the end of the stream io.EOF is returned.
func (z *Reader) Read(p []byte) (n int, err error) {
	if z.err != nil {
		return 0, z.err
	}
	for n < len(p) {
		var s Symbol
		if s, err = z.readSymbol(); err != nil {
			if err != io.EOF && debug != nil {
				xlog.Printf(debug, "R error %s after %d symbols\n",
					err, z.stats.Symbols)
			}
			z.err = err
			return n, err
		}
		z.stats.Add(s)
		p[n] = Decode(s)
		n++
	}
	return n, nil
}

// Stats returns the statistics of the symbols read so far.
func (z *Reader) Stats() Stats { return z.stats }
