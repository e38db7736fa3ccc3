// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icons exports an application icon to raster images for mobile, web
and general use.

# Directory Structure

All paths are relative to the base directory:

	assets/icons/app-icon.svg         The source vector image.
	assets/icons/<platform>/<file>    One raster image per entry of the
	                                  resolution table.
	assets/icons/web/favicon.ico      Multi-resolution favicon, packed from
	                                  temporary images at favicon sizes.

Rendering and packing are delegated to a [Rasterizer] and a [Bundler]. The
usual ones run Inkscape and ImageMagick, see package tool.
*/
package icons

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.astrophena.name/iconexport/internal/logger"
)

// Possible errors.
var (
	// ErrSourceMissing is returned when the source image does not exist.
	ErrSourceMissing = errors.New("source image not found")
	// ErrNotSVG is returned when the source image is not an SVG document.
	ErrNotSVG = errors.New("source image is not an SVG document")
	// ErrRasterizerUnavailable is returned when the rasterizer can't be run.
	ErrRasterizerUnavailable = errors.New("rasterizer unavailable")
	// ErrIncomplete is returned by Run when some of the icons were not exported.
	ErrIncomplete = errors.New("some icons were not exported")
	// ErrNoFaviconSources is returned by ExportFavicon when none of the
	// temporary images could be rendered.
	ErrNoFaviconSources = errors.New("no favicon sources were rendered")
)

// Rasterizer renders a vector image into a square raster image.
type Rasterizer interface {
	// Check reports whether the rasterizer can be used.
	Check(ctx context.Context) error
	// Render renders src at size×size pixels into dst.
	Render(ctx context.Context, src string, size int, dst string) error
}

// Bundler packs raster images into a multi-resolution icon file.
type Bundler interface {
	// Pack writes the images from srcs, in order, into dst.
	Pack(ctx context.Context, srcs []string, dst string) error
}

// Config represents an export configuration.
type Config struct {
	// Dir is the base directory. If empty, uses the current directory.
	Dir string
	// Table lists the icons to export. If nil, uses DefaultTable.
	Table Table
	// FaviconSizes are the sizes packed into favicon.ico. If nil, uses
	// DefaultFaviconSizes.
	FaviconSizes []int
	// Rasterizer renders the icons. Required.
	Rasterizer Rasterizer
	// Bundler packs favicon.ico. If nil, the favicon is not built.
	Bundler Bundler
	// MinifiedSVG, if set, is called to write a minified copy of the source
	// to web/icon.svg after a successful export.
	MinifiedSVG func(src, dst string) error
	// Logf is a logger for progress messages. If nil, log.Printf is used.
	Logf logger.Logf
}

func (c *Config) setDefaults() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.Table == nil {
		c.Table = DefaultTable()
	}
	if c.FaviconSizes == nil {
		c.FaviconSizes = DefaultFaviconSizes
	}
	if c.Logf == nil {
		c.Logf = logger.Logf(log.Printf)
	}
}

// IconsDir returns the directory that holds the source and all exported icons.
func (c *Config) IconsDir() string {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, "assets", "icons")
}

// Source returns the path of the source vector image.
func (c *Config) Source() string { return filepath.Join(c.IconsDir(), "app-icon.svg") }

// FaviconPath returns the path favicon.ico is written to.
func (c *Config) FaviconPath() string { return filepath.Join(c.IconsDir(), "web", "favicon.ico") }

// Result is the outcome of ExportAll.
type Result struct {
	Succeeded int
	Total     int
	// Failed lists paths that could not be exported, in table order.
	Failed []string
}

// OK reports whether every icon was exported.
func (r Result) OK() bool { return r.Succeeded == r.Total }

func (r Result) String() string { return fmt.Sprintf("%d/%d", r.Succeeded, r.Total) }

// VerifyPreconditions reports whether the source image exists and the
// rasterizer can be run. It logs a line for every failed check.
func VerifyPreconditions(ctx context.Context, c *Config) bool {
	c.setDefaults()
	return verify(ctx, c) == nil
}

func verify(ctx context.Context, c *Config) error {
	var errs []error
	if err := checkSource(c.Source()); err != nil {
		c.Logf("Source image is not usable: %v.", err)
		errs = append(errs, err)
	}
	if c.Rasterizer == nil {
		c.Logf("No rasterizer configured.")
		errs = append(errs, ErrRasterizerUnavailable)
	} else if err := c.Rasterizer.Check(ctx); err != nil {
		c.Logf("Rasterizer is not available: %v.", err)
		errs = append(errs, fmt.Errorf("%w: %v", ErrRasterizerUnavailable, err))
	}
	return errors.Join(errs...)
}

// PrepareDirs creates the output directory of every platform in the table.
// Existing directories are left as they are.
func PrepareDirs(c *Config) error {
	c.setDefaults()
	for _, p := range c.Table {
		dir := filepath.Join(c.IconsDir(), p.Name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		c.Logf("Directory ready: %s", dir)
	}
	return nil
}

// ExportAll renders every icon of the table.
//
// If the preconditions are not met, it returns an error before touching the
// file system. A single icon that fails, because of a bad size or a render
// error, is logged, recorded in the result and doesn't stop the export.
func ExportAll(ctx context.Context, c *Config) (Result, error) {
	c.setDefaults()
	res := Result{Total: c.Table.Total()}

	if err := c.Table.Validate(); err != nil {
		return res, err
	}
	if err := verify(ctx, c); err != nil {
		return res, err
	}
	if err := PrepareDirs(c); err != nil {
		return res, err
	}

	if vb := viewBox(c.Source()); vb != "" {
		c.Logf("Exporting icons from %s (viewBox %s).", c.Source(), vb)
	} else {
		c.Logf("Exporting icons from %s.", c.Source())
	}
	for _, p := range c.Table {
		c.Logf("Platform %s:", p.Name)
		for _, ic := range p.Icons {
			dst := filepath.Join(c.IconsDir(), p.Name, ic.Name)
			err := ic.checkSize()
			if err == nil {
				err = c.Rasterizer.Render(ctx, c.Source(), ic.Size, dst)
			}
			if err != nil {
				c.Logf("Failed to export %s: %v", dst, err)
				res.Failed = append(res.Failed, dst)
				continue
			}
			res.Succeeded++
			c.Logf("Exported %s (%dx%d).", dst, ic.Size, ic.Size)
		}
	}

	c.Logf("Done: %s icons exported.", res)
	if !res.OK() {
		c.Logf("Some icons failed to export, check that the rasterizer works.")
	}
	return res, nil
}

// ExportFavicon renders the source at each favicon size into temporary images
// in the icons directory and packs them into favicon.ico.
//
// It doesn't depend on ExportAll. The temporary images are removed before it
// returns, whether or not packing succeeded.
func ExportFavicon(ctx context.Context, c *Config) (err error) {
	c.setDefaults()
	if c.Bundler == nil {
		return errors.New("no bundler configured")
	}
	if c.Rasterizer == nil {
		return ErrRasterizerUnavailable
	}
	if err := validateFaviconSizes(c.FaviconSizes); err != nil {
		return err
	}

	// A failed render may still leave a partial file behind, so every
	// attempted path is cleaned up.
	var attempted []string
	defer func() {
		for _, tmp := range attempted {
			if rerr := os.Remove(tmp); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
				err = errors.Join(err, rerr)
			}
		}
	}()

	var rendered []string
	for _, size := range c.FaviconSizes {
		tmp := filepath.Join(c.IconsDir(), fmt.Sprintf("temp_%d.png", size))
		attempted = append(attempted, tmp)
		if err := c.Rasterizer.Render(ctx, c.Source(), size, tmp); err != nil {
			c.Logf("Failed to render %s: %v", tmp, err)
			continue
		}
		rendered = append(rendered, tmp)
	}
	if len(rendered) == 0 {
		return ErrNoFaviconSources
	}

	dst := c.FaviconPath()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := c.Bundler.Pack(ctx, rendered, dst); err != nil {
		return fmt.Errorf("packing %s: %w", dst, err)
	}
	c.Logf("Favicon exported: %s", dst)
	return nil
}

// Run exports all icons and, if every one of them was exported, the favicon
// and the optional minified SVG.
//
// Favicon failures are logged as warnings and don't make Run fail. If some of
// the icons were not exported, Run returns an error wrapping ErrIncomplete.
func Run(ctx context.Context, c *Config) error {
	c.setDefaults()

	res, err := ExportAll(ctx, c)
	if err != nil {
		return err
	}
	if !res.OK() {
		return fmt.Errorf("%w: %s exported", ErrIncomplete, res)
	}

	if c.Bundler != nil {
		if err := ExportFavicon(ctx, c); err != nil {
			c.Logf("Warning: favicon.ico was not exported: %v", err)
		}
	}

	if c.MinifiedSVG != nil {
		dst := filepath.Join(c.IconsDir(), "web", "icon.svg")
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := c.MinifiedSVG(c.Source(), dst); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		c.Logf("Minified SVG written: %s", dst)
	}

	c.Logf("All icons were exported to %s.", c.IconsDir())
	return nil
}
