// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package tool runs the external programs that render and pack icons.
package tool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Inkscape renders SVG images with the inkscape command (version 1.0 or
// later).
type Inkscape struct {
	// Path is the name or path of the executable. If empty, "inkscape" is
	// looked up in PATH.
	Path string
}

func (i *Inkscape) path() string {
	if i.Path == "" {
		return "inkscape"
	}
	return i.Path
}

// Check runs inkscape --version.
func (i *Inkscape) Check(ctx context.Context) error {
	if _, err := exec.LookPath(i.path()); err != nil {
		return fmt.Errorf("%s command not found, install Inkscape from https://inkscape.org/release/", i.path())
	}
	return run(ctx, i.path(), "--version")
}

// Render exports src as a size×size PNG image to dst.
func (i *Inkscape) Render(ctx context.Context, src string, size int, dst string) error {
	s := strconv.Itoa(size)
	return run(ctx, i.path(),
		src,
		"--export-type=png",
		"--export-width="+s,
		"--export-height="+s,
		"--export-filename="+dst,
	)
}

// Magick packs images into an ICO file with the ImageMagick magick command.
type Magick struct {
	// Path is the name or path of the executable. If empty, "magick" is
	// looked up in PATH.
	Path string
}

func (m *Magick) path() string {
	if m.Path == "" {
		return "magick"
	}
	return m.Path
}

// Pack runs magick with srcs followed by dst.
func (m *Magick) Pack(ctx context.Context, srcs []string, dst string) error {
	if _, err := exec.LookPath(m.path()); err != nil {
		return fmt.Errorf("%s command not found, install ImageMagick", m.path())
	}
	args := append(append([]string{}, srcs...), dst)
	return run(ctx, m.path(), args...)
}

// run runs the command. On failure, the error includes what the command
// printed.
func run(ctx context.Context, name string, args ...string) error {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		out := strings.TrimSpace(stderr.String())
		if out == "" {
			out = strings.TrimSpace(stdout.String())
		}
		if out == "" {
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return fmt.Errorf("%s failed: %w:\n%s", name, err, out)
	}
	return nil
}
