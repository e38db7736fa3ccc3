// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package render

import (
	"os"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

const svgMediaType = "image/svg+xml"

// MinifySVG writes a minified copy of the SVG image src to dst.
func MinifySVG(src, dst string) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	m := minify.New()
	m.AddFunc(svgMediaType, svg.Minify)
	minified, err := m.Bytes(svgMediaType, b)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, minified, 0o644)
}
