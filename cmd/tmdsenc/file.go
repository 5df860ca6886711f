// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/kr/pretty"
	"github.com/ulikunitz/tmds"
	"github.com/ulikunitz/tmds/internal/xlog"
	"github.com/ulikunitz/tmds/xio"
)

const tmdsSuffix = ".tmds"

// bufferSize is used for the buffered file readers and writers.
const bufferSize = 64 << 10

// targetName computes the name of the output file.
func targetName(path string, opts *options) (target string, err error) {
	if path == "" {
		return "", errors.New("empty file name not supported")
	}
	if !opts.decode {
		if strings.HasSuffix(path, tmdsSuffix) {
			return "", fmt.Errorf("%s already has suffix %s",
				path, tmdsSuffix)
		}
		return path + tmdsSuffix, nil
	}
	if !strings.HasSuffix(path, tmdsSuffix) {
		return "", fmt.Errorf("%s has no suffix %s", path, tmdsSuffix)
	}
	target = path[:len(path)-len(tmdsSuffix)]
	if len(target) == 0 {
		return "", fmt.Errorf("file name %s has no base part", path)
	}
	return target, nil
}

// nopCloser protects a file from being closed by the writer stack.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// output is the destination for the data of a single input file. Data is
// written into a temporary file that is renamed by commit.
type output struct {
	f     *os.File
	name  string
	stack *xio.WriteCloserStack
	enc   *tmds.Writer
}

// newOutput creates the output for the given path.
func newOutput(path string, perm os.FileMode, opts *options) (o *output, err error) {
	o = &output{name: "-", f: os.Stdout}
	if !opts.stdout {
		if o.name, err = targetName(path, opts); err != nil {
			return nil, err
		}
		if _, err = os.Stat(o.name); !os.IsNotExist(err) {
			if !opts.force {
				return nil, &userPathError{Path: o.name,
					Err: errors.New("file exists")}
			}
		}
		o.f, err = os.OpenFile(o.name+".tmp",
			os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
		if err != nil {
			return nil, err
		}
	}
	o.stack = xio.NewWriteCloserStack()
	o.stack.Push(nopCloser{o.f})
	o.stack.PushBuffer(bufferSize)
	if opts.decode {
		return o, nil
	}
	cfg := tmds.WriterConfig{
		Format:        opts.format,
		ResetInterval: opts.interval,
	}
	if o.enc, err = tmds.NewWriterConfig(o.stack.Top(), cfg); err != nil {
		o.abort()
		return nil, err
	}
	o.stack.Push(o.enc)
	return o, nil
}

func (o *output) Write(p []byte) (n int, err error) {
	return o.stack.Write(p)
}

func (o *output) isStdout() bool { return o.f == os.Stdout }

// abort removes the temporary file.
func (o *output) abort() {
	if o.isStdout() {
		return
	}
	o.f.Close()
	os.Remove(o.f.Name())
}

// commit closes the writers and renames the temporary file.
func (o *output) commit() error {
	if err := o.stack.Close(); err != nil {
		o.abort()
		return err
	}
	if o.isStdout() {
		return nil
	}
	if err := o.f.Close(); err != nil {
		os.Remove(o.f.Name())
		return err
	}
	return os.Rename(o.f.Name(), o.name)
}

// signalHandler removes the temporary file of the output on an interrupt.
// The returned quit channel must be closed to terminate the handler
// goroutine.
func signalHandler(o *output) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
		case <-sigch:
			o.abort()
			os.Exit(7)
		}
	}()
	return quit
}

// openFile opens the input file. Only regular files are supported.
func openFile(path string) (f *os.File, err error) {
	if path == "-" {
		return os.Stdin, nil
	}
	if f, err = os.Open(path); err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, &userPathError{Path: path,
			Err: errors.New("no regular file")}
	}
	return f, nil
}

// perm returns the permissions for the output file.
func perm(f *os.File) os.FileMode {
	const defaultPerm os.FileMode = 0666
	fi, err := f.Stat()
	if err != nil {
		return defaultPerm
	}
	return fi.Mode() & defaultPerm
}

// userPathError represents a path error presentable to a user. It doesn't
// contain the operation of os.PathError.
type userPathError struct {
	Path string
	Err  error
}

func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError removes the operation information from path errors.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

func printErr(err error) {
	if err != nil {
		xlog.Warn(userError(err))
	}
}

// processFile encodes or decodes the file with the given path.
func processFile(path string, opts *options) (err error) {
	defer func() { printErr(err) }()
	f, err := openFile(path)
	if err != nil {
		return err
	}
	if f != os.Stdin {
		defer f.Close()
	}

	var r io.Reader = bufio.NewReaderSize(f, bufferSize)
	var dec *tmds.Reader
	if opts.decode {
		dec, err = tmds.NewReaderConfig(r,
			tmds.ReaderConfig{Format: opts.format})
		if err != nil {
			return err
		}
		r = dec
	}

	o, err := newOutput(path, perm(f), opts)
	if err != nil {
		return err
	}
	quit := signalHandler(o)
	n, err := io.Copy(o, r)
	close(quit)
	if err != nil {
		o.abort()
		return err
	}
	if err = o.commit(); err != nil {
		return err
	}
	xlog.Infof("%s: %d bytes -> %s", path, n, o.name)

	if opts.stats {
		var st tmds.Stats
		if dec != nil {
			st = dec.Stats()
		} else {
			st = o.enc.Stats()
		}
		pretty.Fprintf(os.Stderr, "%s: %# v\n", path, st)
	}

	if path == "-" || opts.keep || opts.stdout {
		return nil
	}
	f.Close()
	return os.Remove(path)
}
