// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xio provides tools to handle I/O operations. The
// [WriteCloserStack] type combines a chain of writers, for instance a TMDS
// writer on top of a buffered file, into a single [io.WriteCloser].
package xio

import (
	"bufio"
	"errors"
	"io"
)

// WriteCloserStack holds a chain of writers. Every writer writes to the one
// below it; Write goes to the top of the stack and Close closes the writers
// from the top to the bottom.
type WriteCloserStack struct {
	Stack []io.WriteCloser
}

// NewWriteCloserStack creates a new WriteCloserStack with an empty stack.
func NewWriteCloserStack() *WriteCloserStack {
	return &WriteCloserStack{}
}

// Len returns the number of writers on the stack.
func (w *WriteCloserStack) Len() int { return len(w.Stack) }

// Top returns the writer on top of the stack. It is a writer discarding all
// data if the stack is empty.
func (w *WriteCloserStack) Top() io.Writer {
	k := len(w.Stack)
	if k == 0 {
		return io.Discard
	}
	return w.Stack[k-1]
}

// Write writes data to the top writer in the stack.
func (w *WriteCloserStack) Write(p []byte) (n int, err error) {
	return w.Top().Write(p)
}

// Close closes all writers on the stack starting with the top and joins the
// errors. The stack will be empty afterwards.
func (w *WriteCloserStack) Close() error {
	var errs []error
	for k := len(w.Stack) - 1; k >= 0; k-- {
		if err := w.Stack[k].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	w.Stack = nil
	return errors.Join(errs...)
}

// Push puts a new writer on top of the stack. It panics if wc is nil.
func (w *WriteCloserStack) Push(wc io.WriteCloser) {
	if wc == nil {
		panic("xio: cannot push nil WriteCloser onto stack")
	}
	w.Stack = append(w.Stack, wc)
}

// flushCloser flushes the buffered writer on Close.
type flushCloser struct {
	*bufio.Writer
}

func (f flushCloser) Close() error { return f.Flush() }

// PushBuffer puts a buffered writer on top of the stack, which writes into
// the current top. Close flushes the buffer but doesn't close anything
// else.
func (w *WriteCloserStack) PushBuffer(size int) {
	w.Push(flushCloser{bufio.NewWriterSize(w.Top(), size)})
}
