// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package render renders and packs icons without external programs.
package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterizer renders SVG images in-process. It supports the subset of SVG
// that oksvg does: no text, filters or embedded images.
type Rasterizer struct{}

// Check always succeeds.
func (Rasterizer) Check(context.Context) error { return nil }

// Render renders src as a size×size PNG image to dst. The image is stretched
// to fill the square.
func (Rasterizer) Render(ctx context.Context, src string, size int, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if size <= 0 {
		return fmt.Errorf("invalid size %d", size)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	icon, err := oksvg.ReadIconStream(in)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", src, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := png.Encode(out, rgba); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode %s: %w", dst, err)
	}
	return out.Close()
}
