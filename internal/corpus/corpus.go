// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus loads the files of a test corpus and streams them through
// the TMDS writer.
package corpus

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/ulikunitz/tmds"
)

// File is a single file of a corpus.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total number of bytes in the files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// Truncate limits the data of every file to at most n bytes. The data is
// not copied.
func Truncate(files []File, n int) []File {
	t := make([]File, len(files))
	for i, f := range files {
		if len(f.Data) > n {
			f.Data = f.Data[:n]
		}
		t[i] = f
	}
	return t
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

// Encode encodes the file with a new writer and returns the statistics of
// the symbol stream together with its size in bytes.
func Encode(f File, cfg tmds.WriterConfig) (stats tmds.Stats, size int64, err error) {
	cw := &countWriter{}
	w, err := tmds.NewWriterConfig(cw, cfg)
	if err != nil {
		return stats, 0, err
	}
	if _, err = io.Copy(w, bytes.NewReader(f.Data)); err != nil {
		return stats, cw.n, err
	}
	if err = w.Close(); err != nil {
		return stats, cw.n, err
	}
	return w.Stats(), cw.n, nil
}
