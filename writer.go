// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

import (
	"errors"
	"io"

	"github.com/ulikunitz/tmds/internal/xlog"
)

// defaultBufferSize is the default size of the byte buffers of writers and
// readers.
const defaultBufferSize = 4096

// ErrClosed is returned by Writer methods after Close has been called.
var ErrClosed = errors.New("tmds: writer is closed")

// WriterConfig provides the configuration parameters for a writer.
type WriterConfig struct {
	// Format of the symbol stream. (default: Packed)
	Format Format

	// ResetInterval gives the number of words after which the running
	// bias of the encoder is reset. The value zero disables the
	// periodic reset.
	ResetInterval int

	// BufferSize is the size of the output buffer in bytes.
	// (default: 4096)
	BufferSize int
}

// ApplyDefaults replaces zero values by their defaults.
func (cfg *WriterConfig) ApplyDefaults() {
	if cfg.BufferSize == 0 {
		cfg.BufferSize = defaultBufferSize
	}
}

// Verify checks the configuration for errors. Zero values will be replaced
// by default values.
func (cfg *WriterConfig) Verify() error {
	if cfg == nil {
		return errors.New("tmds: writer configuration is nil")
	}
	cfg.ApplyDefaults()
	if err := cfg.Format.verify(); err != nil {
		return err
	}
	if cfg.ResetInterval < 0 {
		return errors.New("tmds: ResetInterval must not be negative")
	}
	// A buffer must hold at least one packed symbol group of five
	// bytes.
	if cfg.BufferSize < 5 {
		return errors.New("tmds: BufferSize must be at least 5")
	}
	return nil
}

// Writer encodes the bytes written to it as TMDS symbols and writes the
// symbols to the underlying writer. Close must be called to write the final
// bits of a packed stream.
type Writer struct {
	cfg   WriterConfig
	w     io.Writer
	enc   Encoder
	stats Stats

	// words encoded since the last reset
	words int

	// bit accumulator for the packed format
	acc   uint32
	nbits uint

	buf    []byte
	err    error
	closed bool
}

// NewWriter creates a writer for the packed format without periodic bias
// resets.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterConfig(w, WriterConfig{})
}

// NewWriterConfig creates a writer using the given configuration.
func NewWriterConfig(w io.Writer, cfg WriterConfig) (*Writer, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return &Writer{
		cfg: cfg,
		w:   w,
		buf: make([]byte, 0, cfg.BufferSize),
	}, nil
}

// Write encodes the bytes in p. It returns the number of bytes encoded.
func (z *Writer) Write(p []byte) (n int, err error) {
	if z.closed {
		return 0, ErrClosed
	}
	if z.err != nil {
		return 0, z.err
	}
	for _, b := range p {
		if z.cfg.ResetInterval > 0 && z.words >= z.cfg.ResetInterval {
			z.resync()
		}
		s := z.enc.Encode(b)
		z.words++
		z.stats.Add(s)
		if err = z.putSymbol(s); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// putSymbol adds the symbol to the output buffer. The buffer is flushed if
// it can't take another symbol.
func (z *Writer) putSymbol(s Symbol) error {
	if z.cfg.Format == Wide {
		z.buf = append(z.buf, byte(s), byte(s>>8))
	} else {
		z.acc |= uint32(s) << z.nbits
		z.nbits += SymbolBits
		for z.nbits >= 8 {
			z.buf = append(z.buf, byte(z.acc))
			z.acc >>= 8
			z.nbits -= 8
		}
	}
	if cap(z.buf)-len(z.buf) < 2 {
		return z.flush()
	}
	return nil
}

// flush writes the output buffer to the underlying writer.
func (z *Writer) flush() error {
	if len(z.buf) == 0 {
		return nil
	}
	_, err := z.w.Write(z.buf)
	z.buf = z.buf[:0]
	if err != nil {
		z.err = err
	}
	return err
}

// resync resets the encoder bias.
func (z *Writer) resync() {
	z.enc.Reset()
	z.words = 0
	z.stats.Resets++
}

// Resync resets the running bias of the encoder. It must be called when the
// link leaves a control period.
func (z *Writer) Resync() error {
	if z.closed {
		return ErrClosed
	}
	z.resync()
	return nil
}

// Bias returns the running bias of the encoder.
func (z *Writer) Bias() int { return z.enc.Bias() }

// Stats returns the statistics of the symbols written so far.
func (z *Writer) Stats() Stats { return z.stats }

// Close writes the remaining bits, padded with zero bits to a full byte,
// and flushes the buffer. It doesn't close the underlying writer.
func (z *Writer) Close() error {
	if z.closed {
		return ErrClosed
	}
	z.closed = true
	if z.err != nil {
		return z.err
	}
	if z.nbits > 0 {
		z.buf = append(z.buf, byte(z.acc))
		z.acc, z.nbits = 0, 0
	}
	if debug != nil {
		xlog.Printf(debug, "W close %d symbols, bias %d\n",
			z.stats.Symbols, z.enc.Bias())
	}
	return z.flush()
}
