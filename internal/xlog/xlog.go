// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog supports optional debug output and the messages of the command
line tools.

The Logger interface is supported by the log.Logger type. The Print, Printf
and Println functions don't do anything if the logger is nil, so a package
can switch its trace off by setting its logger variable to nil. The caller
still evaluates the arguments and converts them to interface values, which
allocates, so hot code should check the logger for nil before calling the
functions.

The other functions write to a standard logger controlled by the flags
Lquiet, Lverbose and Ldebug.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger is supported by the log.Logger type.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// Flags for the standard logger.
const (
	// Lquiet suppresses warnings.
	Lquiet = 1 << iota
	// Lverbose enables the output of Infof.
	Lverbose
	// Ldebug enables the output of Debugf.
	Ldebug
)

var (
	mu    sync.Mutex
	flags int
	std   = log.New(os.Stderr, "", 0)
)

// SetPrefix sets the prefix of the standard logger.
func SetPrefix(prefix string) { std.SetPrefix(prefix) }

// SetOutput sets the output of the standard logger.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// SetFlags sets the flags for the standard logger.
func SetFlags(f int) {
	mu.Lock()
	flags = f
	mu.Unlock()
}

// Flags returns the flags of the standard logger.
func Flags() int {
	mu.Lock()
	defer mu.Unlock()
	return flags
}

func output(s string) { std.Output(3, s) }

// Warn prints a warning unless Lquiet is set.
func Warn(v ...interface{}) {
	if Flags()&Lquiet == 0 {
		output(fmt.Sprint(v...))
	}
}

// Warnf prints a formatted warning unless Lquiet is set.
func Warnf(format string, v ...interface{}) {
	if Flags()&Lquiet == 0 {
		output(fmt.Sprintf(format, v...))
	}
}

// Infof prints a message if Lverbose is set.
func Infof(format string, v ...interface{}) {
	if Flags()&Lverbose != 0 {
		output(fmt.Sprintf(format, v...))
	}
}

// Debugf prints a message if Ldebug is set.
func Debugf(format string, v ...interface{}) {
	if Flags()&Ldebug != 0 {
		output(fmt.Sprintf(format, v...))
	}
}

// Fatal prints the message independent of the flags and exits the program
// with status 1.
func Fatal(v ...interface{}) {
	output(fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf prints the formatted message independent of the flags and exits
// the program with status 1.
func Fatalf(format string, v ...interface{}) {
	output(fmt.Sprintf(format, v...))
	os.Exit(1)
}
