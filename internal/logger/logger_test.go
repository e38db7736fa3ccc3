// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestTo(t *testing.T) {
	var buf bytes.Buffer
	logf := To(&buf)
	logf("Exported %s (%dx%d).", "icon-20.png", 20, 20)
	logf("already terminated\n")
	testutil.AssertEqual(t, buf.String(), "Exported icon-20.png (20x20).\nalready terminated\n")
}
