// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// checkSource checks that path exists and holds an SVG document: the root
// element is svg, optionally with a namespace prefix (svg:svg).
//
// The document is read with an HTML parser, which puts the root element into
// an implied body. An HTML page that has nothing but an svg element in its
// body is therefore accepted too.
func checkSource(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrSourceMissing, path)
	} else if err != nil {
		return err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrNotSVG, err)
	}
	if svgRoot(doc) == nil {
		return fmt.Errorf("%s: %w", path, ErrNotSVG)
	}
	return nil
}

// svgRoot returns the root svg element of doc, or nil if the document has
// anything else at the top level.
func svgRoot(doc *goquery.Document) *goquery.Selection {
	if doc.Find("head").Children().Length() != 0 {
		return nil
	}
	top := doc.Find("body").Children()
	if top.Length() != 1 || !isSVGName(goquery.NodeName(top)) {
		return nil
	}
	return top
}

func isSVGName(name string) bool {
	return name == "svg" || strings.HasSuffix(name, ":svg")
}

// viewBox returns the viewBox attribute of the root svg element, if any.
func viewBox(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return ""
	}
	root := svgRoot(doc)
	if root == nil {
		return ""
	}
	// The HTML parser restores the SVG casing of known attributes only
	// inside foreign content.
	if v, ok := root.Attr("viewBox"); ok {
		return v
	}
	v, _ := root.Attr("viewbox")
	return v
}
