// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmds

import (
	"io"
	"log"

	"github.com/ulikunitz/tmds/internal/xlog"
)

// debug receives the symbol trace of encoders, writers and readers. A nil
// logger disables the trace.
var debug xlog.Logger

// traceTo directs the symbol trace to w. Every line starts with prefix. If w
// is nil the trace is switched off.
func traceTo(w io.Writer, prefix string) {
	if w == nil {
		debug = nil
		return
	}
	debug = log.New(w, prefix, 0)
}
