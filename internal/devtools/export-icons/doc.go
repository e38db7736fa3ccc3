// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Export-icons exports the application icon to raster images for iOS, Android,
web and general use.

# Usage

	$ go tool export-icons [flags]

It reads assets/icons/app-icon.svg and writes PNG images to
assets/icons/{ios,android,web,general}. When every image is exported, it also
packs assets/icons/web/favicon.ico from 16, 32 and 48 pixel images.

By default, images are rendered with Inkscape (the "inkscape" command) and
favicon.ico is packed with ImageMagick (the "magick" command). Both must be
available in the system's PATH. Pass -rasterizer=builtin and -bundler=builtin
to do without them; the built-in rasterizer doesn't support text, filters
and embedded images.

A missing ImageMagick only produces a warning. If some of the images can't be
exported, export-icons exits with a non-zero status.

# Resolution Table

The -table flag points to a Starlark file that replaces the built-in list of
images:

	resolutions = [
	    ("ios", [(20, "icon-20.png"), (29, "icon-29.png")]),
	    ("web", [(16, "favicon-16x16.png"), (32, "favicon-32x32.png")]),
	]

	# Optional, defaults to [16, 32, 48].
	favicon_sizes = [16, 32, 48]

# Watching

With -watch, export-icons keeps running after the first export and exports
again each time the source image or the table file changes.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
