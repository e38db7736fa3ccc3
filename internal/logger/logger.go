// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger defines a type for writing human-readable progress.
package logger

import (
	"fmt"
	"io"
	"strings"
)

// Logf is the basic logger type: a printf-like func. Like log.Printf, the
// format need not end in a newline.
type Logf func(format string, args ...any)

// To returns a Logf that writes each message as a line to w.
func To(w io.Writer) Logf {
	return func(format string, args ...any) {
		s := fmt.Sprintf(format, args...)
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		io.WriteString(w, s)
	}
}

// Discard is a Logf that drops everything.
func Discard(string, ...any) {}
