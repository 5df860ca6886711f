// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tmdsenc encodes files into TMDS symbol streams and decodes them.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"
	"github.com/ulikunitz/tmds"
	"github.com/ulikunitz/tmds/internal/xlog"
)

const usageStr = `Usage: tmdsenc [OPTION]... [FILE]...
Encode or decode FILEs as TMDS 8b/10b symbol streams (by default, encode
FILEs into FILE.tmds).

  -c, --stdout      write to standard output and don't delete input files
  -d, --decode      decode FILE.tmds into FILE
  -D, --debug       print debug messages
  -f, --force       force overwrite of output files
  -F, --format NAME stream format: packed or wide
  -h, --help        give this help
  -k, --keep        keep (don't delete) input files
  -q, --quiet       suppress all warnings
  -r, --reset N     reset the running bias every N words; 0 never
  -s, --stats       print the symbol stream statistics of every file
  -v, --verbose     verbose mode
  -w, --wide        same as --format wide

With no file, or when FILE is -, read standard input.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// options collects the flags of the command.
type options struct {
	stdout   bool
	decode   bool
	force    bool
	keep     bool
	stats    bool
	format   tmds.Format
	interval int
}

// streamFormat returns the format selected by the --format and --wide flags.
// An empty name selects the packed format.
func streamFormat(name string, wide bool) (tmds.Format, error) {
	if wide {
		if name != "" && name != "wide" {
			return 0, fmt.Errorf(
				"--wide conflicts with --format %s", name)
		}
		return tmds.Wide, nil
	}
	if name == "" {
		return tmds.Packed, nil
	}
	return tmds.ParseFormat(name)
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	xlog.SetPrefix(fmt.Sprintf("%s: ", cmdName))

	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help     = pflag.BoolP("help", "h", false, "")
		stdout   = pflag.BoolP("stdout", "c", false, "")
		decode   = pflag.BoolP("decode", "d", false, "")
		debug    = pflag.BoolP("debug", "D", false, "")
		force    = pflag.BoolP("force", "f", false, "")
		format   = pflag.StringP("format", "F", "", "")
		keep     = pflag.BoolP("keep", "k", false, "")
		quiet    = pflag.BoolP("quiet", "q", false, "")
		interval = pflag.IntP("reset", "r", 0, "")
		stats    = pflag.BoolP("stats", "s", false, "")
		verbose  = pflag.BoolP("verbose", "v", false, "")
		wide     = pflag.BoolP("wide", "w", false, "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}

	var flags int
	if *quiet {
		flags |= xlog.Lquiet
	}
	if *verbose {
		flags |= xlog.Lverbose
	}
	if *debug {
		flags |= xlog.Ldebug
	}
	xlog.SetFlags(flags)

	if *interval < 0 {
		xlog.Fatalf("reset interval %d must not be negative", *interval)
	}
	f, err := streamFormat(*format, *wide)
	if err != nil {
		xlog.Fatal(err)
	}
	opts := &options{
		stdout:   *stdout,
		decode:   *decode,
		force:    *force,
		keep:     *keep,
		stats:    *stats,
		format:   f,
		interval: *interval,
	}
	xlog.Debugf("options %+v", *opts)

	args := pflag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	exit := 0
	for _, path := range args {
		o := *opts
		if path == "-" {
			o.stdout = true
		}
		if err := processFile(path, &o); err != nil {
			exit = 1
		}
	}
	os.Exit(exit)
}
