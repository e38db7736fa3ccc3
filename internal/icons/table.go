// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"errors"
	"fmt"
	"strings"
)

// Table validation errors, used in tests.
var (
	errTableEmpty   = errors.New("resolution table is empty")
	errPlatformName = errors.New("invalid platform name")
	errPlatformDup  = errors.New("duplicate platform")
	errIconSize     = errors.New("icon size must be positive")
	errIconName     = errors.New("invalid icon file name")
	errIconDup      = errors.New("duplicate icon file name")
	errFaviconSizes = errors.New("favicon sizes must be positive")
)

// Icon is a single raster output: a square image of Size pixels written to
// a file called Name.
type Icon struct {
	Size int
	Name string
}

// Platform groups icons that are written into the same directory.
type Platform struct {
	Name  string
	Icons []Icon
}

// Table maps platforms to the icons exported for them. Platforms and icons are
// exported in the order they appear in.
type Table []Platform

// DefaultTable returns the table for iOS, Android, web and general use.
//
// It returns a fresh copy on each call, so callers may modify it.
func DefaultTable() Table {
	return Table{
		{
			Name: "ios",
			Icons: []Icon{
				{20, "icon-20.png"},
				{29, "icon-29.png"},
				{40, "icon-40.png"},
				{58, "icon-58.png"},
				{60, "icon-60.png"},
				{80, "icon-80.png"},
				{87, "icon-87.png"},
				{120, "icon-120.png"},
				{180, "icon-180.png"},
				{1024, "icon-1024.png"},
			},
		},
		{
			Name: "android",
			Icons: []Icon{
				{36, "ic_launcher_ldpi.png"},
				{48, "ic_launcher_mdpi.png"},
				{72, "ic_launcher_hdpi.png"},
				{96, "ic_launcher_xhdpi.png"},
				{144, "ic_launcher_xxhdpi.png"},
				{192, "ic_launcher_xxxhdpi.png"},
				{512, "ic_launcher_web.png"},
			},
		},
		{
			Name: "web",
			Icons: []Icon{
				{16, "favicon-16x16.png"},
				{32, "favicon-32x32.png"},
				{96, "favicon-96x96.png"},
				{192, "icon-192x192.png"},
				{512, "icon-512x512.png"},
			},
		},
		{
			Name: "general",
			Icons: []Icon{
				{64, "icon-64.png"},
				{128, "icon-128.png"},
				{256, "icon-256.png"},
				{512, "icon-512.png"},
			},
		},
	}
}

// DefaultFaviconSizes are the sizes packed into favicon.ico.
var DefaultFaviconSizes = []int{16, 32, 48}

// Total returns the number of icons in the table.
func (t Table) Total() int {
	var n int
	for _, p := range t {
		n += len(p.Icons)
	}
	return n
}

// Validate checks that every platform and icon can be mapped onto a file
// inside the icons directory.
//
// Sizes are not checked here: an icon with a bad size fails on its own when
// exported. Use CheckSizes to reject them up front.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errTableEmpty
	}
	seen := make(map[string]bool)
	for _, p := range t {
		if !isPlainName(p.Name) {
			return fmt.Errorf("%w: %q", errPlatformName, p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %q", errPlatformDup, p.Name)
		}
		seen[p.Name] = true

		names := make(map[string]bool)
		for _, ic := range p.Icons {
			if !isPlainName(ic.Name) {
				return fmt.Errorf("%s: %w: %q", p.Name, errIconName, ic.Name)
			}
			if names[ic.Name] {
				return fmt.Errorf("%s: %w: %q", p.Name, errIconDup, ic.Name)
			}
			names[ic.Name] = true
		}
	}
	return nil
}

// CheckSizes checks that every icon in the table has a positive size.
func (t Table) CheckSizes() error {
	for _, p := range t {
		for _, ic := range p.Icons {
			if err := ic.checkSize(); err != nil {
				return fmt.Errorf("%s/%s: %w", p.Name, ic.Name, err)
			}
		}
	}
	return nil
}

func (ic Icon) checkSize() error {
	if ic.Size <= 0 {
		return fmt.Errorf("%w, got %d", errIconSize, ic.Size)
	}
	return nil
}

func validateFaviconSizes(sizes []int) error {
	for _, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("%w, got %d", errFaviconSizes, s)
		}
	}
	return nil
}

// isPlainName reports whether s can be used as a single path element.
func isPlainName(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\`)
}
