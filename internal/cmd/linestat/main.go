// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command linestat encodes the files of the Silesia corpus and reports the
// line statistics of the symbol streams.
package main

import (
	"fmt"
	"log"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"
	"github.com/ulikunitz/tmds"
	"github.com/ulikunitz/tmds/internal/corpus"
	"github.com/ulikunitz/zdata"
)

// transitionsPerSymbol returns the average number of transitions per
// symbol.
func transitionsPerSymbol(st tmds.Stats) float64 {
	if st.Symbols == 0 {
		return 0
	}
	return float64(st.Transitions) / float64(st.Symbols)
}

func main() {
	log.SetPrefix("linestat: ")
	log.SetFlags(0)

	var (
		limit = pflag.IntP("limit", "n", 1<<20,
			"maximum number of bytes per file")
		interval = pflag.IntP("reset", "r", 0,
			"bias reset interval in words")
		wide = pflag.BoolP("wide", "w", false, "use the wide format")
	)
	pflag.Parse()

	files, err := corpus.Files(zdata.Silesia)
	if err != nil {
		log.Fatalf("corpus.Files error %s", err)
	}
	if *limit > 0 {
		files = corpus.Truncate(files, *limit)
	}

	cfg := tmds.WriterConfig{ResetInterval: *interval}
	if *wide {
		cfg.Format = tmds.Wide
	}
	if err = cfg.Verify(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d files, %d bytes\n", len(files), corpus.Size(files))
	pretty.Println(cfg)

	var total tmds.Stats
	var totalSize int64
	for _, f := range files {
		st, size, err := corpus.Encode(f, cfg)
		if err != nil {
			log.Fatalf("%s: %s", f.Name, err)
		}
		fmt.Printf("%-10s %9d bytes %9d encoded %.3f transitions/symbol\n",
			f.Name, len(f.Data), size, transitionsPerSymbol(st))
		pretty.Println(st)
		total.Merge(st)
		totalSize += size
	}

	fmt.Printf("\ntotal %d encoded bytes %.3f transitions/symbol\n",
		totalSize, transitionsPerSymbol(total))
	pretty.Println(total)
}
