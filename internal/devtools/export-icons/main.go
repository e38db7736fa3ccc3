// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/logger"

	"go.astrophena.name/iconexport/internal/icons"
	ilogger "go.astrophena.name/iconexport/internal/logger"
	"go.astrophena.name/iconexport/internal/render"
	"go.astrophena.name/iconexport/internal/tool"
)

func main() { cli.Main(new(app)) }

type app struct {
	dir        string
	table      string
	rasterizer string
	bundler    string
	inkscape   string
	magick     string
	svg        bool
	watch      bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.dir, "C", "", "Look for assets in `dir` instead of the current directory.")
	fs.StringVar(&a.table, "table", "", "Read the resolution table from Starlark `file`.")
	fs.StringVar(&a.rasterizer, "rasterizer", "inkscape", "Rasterizer to use: inkscape or builtin.")
	fs.StringVar(&a.bundler, "bundler", "magick", "Favicon bundler to use: magick or builtin.")
	fs.StringVar(&a.inkscape, "inkscape", "inkscape", "Inkscape `command`.")
	fs.StringVar(&a.magick, "magick", "magick", "ImageMagick `command`.")
	fs.BoolVar(&a.svg, "svg", false, "Also write a minified copy of the source to web/icon.svg.")
	fs.BoolVar(&a.watch, "watch", false, "Export again when the source or table changes.")
}

func (a *app) Run(ctx context.Context) error {
	if env := cli.GetEnv(ctx); len(env.Args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}

	c, err := a.config()
	if err != nil {
		return err
	}
	c.Logf("Starting icon export.")
	err = icons.Run(ctx, c)
	if !a.watch {
		return err
	}
	if err != nil {
		logger.Error(ctx, "export failed", slog.Any("err", err))
	}

	files := []string{c.Source()}
	if a.table != "" {
		files = append(files, a.table)
	}
	return icons.Watch(ctx, files, func(ctx context.Context) error {
		// The table file may have changed too.
		c, err := a.config()
		if err != nil {
			return err
		}
		return icons.Run(ctx, c)
	})
}

func (a *app) config() (*icons.Config, error) {
	c := &icons.Config{
		Dir:  a.dir,
		Logf: ilogger.To(os.Stdout),
	}

	if a.table != "" {
		table, sizes, err := icons.LoadTable(a.table)
		if err != nil {
			return nil, err
		}
		c.Table, c.FaviconSizes = table, sizes
	}

	switch a.rasterizer {
	case "inkscape":
		c.Rasterizer = &tool.Inkscape{Path: a.inkscape}
	case "builtin":
		c.Rasterizer = render.Rasterizer{}
	default:
		return nil, fmt.Errorf("%w: unknown rasterizer %q", cli.ErrInvalidArgs, a.rasterizer)
	}

	switch a.bundler {
	case "magick":
		c.Bundler = &tool.Magick{Path: a.magick}
	case "builtin":
		c.Bundler = render.ICOBundler{}
	default:
		return nil, fmt.Errorf("%w: unknown bundler %q", cli.ErrInvalidArgs, a.bundler)
	}

	if a.svg {
		c.MinifiedSVG = render.MinifySVG
	}
	return c, nil
}
