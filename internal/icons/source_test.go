// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestCheckSource(t *testing.T) {
	cases := map[string]struct {
		src         string
		wantErr     error
		wantViewBox string
	}{
		"svg": {
			src: `<?xml version="1.0" encoding="UTF-8"?>
<!-- Created with Inkscape -->
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 512 512">
  <title>App</title>
  <rect width="512" height="512" fill="#8B5CF6" />
</svg>
`,
			wantViewBox: "0 0 512 512",
		},
		"namespace prefix": {
			src: `<?xml version="1.0"?>
<svg:svg xmlns:svg="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
  <svg:rect width="16" height="16" fill="red"></svg:rect>
</svg:svg>
`,
			wantViewBox: "0 0 16 16",
		},
		"html page with inline svg": {
			src: `<!DOCTYPE html>
<html>
<head><title>Logo</title></head>
<body><p>Our logo:</p><svg viewBox="0 0 16 16"></svg></body>
</html>
`,
			wantErr: ErrNotSVG,
		},
		"svg after another element": {
			src:     `<rect width="16" height="16"/><svg viewBox="0 0 16 16"></svg>`,
			wantErr: ErrNotSVG,
		},
		"plain text": {
			src:     "just text",
			wantErr: ErrNotSVG,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "app-icon.svg")
			if err := os.WriteFile(path, []byte(tc.src), 0o644); err != nil {
				t.Fatal(err)
			}
			err := checkSource(path)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("checkSource(): got error %v, want %v", err, tc.wantErr)
			}
			testutil.AssertEqual(t, viewBox(path), tc.wantViewBox)
		})
	}
}

func TestCheckSourceMissing(t *testing.T) {
	err := checkSource(filepath.Join(t.TempDir(), "app-icon.svg"))
	if !errors.Is(err, ErrSourceMissing) {
		t.Fatalf("checkSource(): got error %v, want %v", err, ErrSourceMissing)
	}
}
