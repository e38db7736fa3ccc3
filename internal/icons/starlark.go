// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var errTableFile = errors.New("invalid table file")

// LoadTable reads a resolution table from a Starlark file.
//
// The file must define a list named resolutions, each element of which is a
// (platform, icons) pair, and icons is a list of (size, file name) pairs:
//
//	resolutions = [
//	    ("ios", [(20, "icon-20.png"), (29, "icon-29.png")]),
//	    ("web", [(16, "favicon-16x16.png")]),
//	]
//
// It may also define favicon_sizes, a list of sizes that go into favicon.ico.
// If it doesn't, the returned sizes are nil.
func LoadTable(path string) (Table, []int, error) {
	thread := &starlark.Thread{
		Name:  "table",
		Print: func(*starlark.Thread, string) {},
	}
	globals, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		},
		thread,
		path,
		nil,
		nil,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	v, ok := globals["resolutions"]
	if !ok {
		return nil, nil, fmt.Errorf("%s: %w: resolutions is not defined", path, errTableFile)
	}
	t, err := tableFromValue(v)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %v", path, errTableFile, err)
	}
	if err := errors.Join(t.Validate(), t.CheckSizes()); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	var sizes []int
	if fv, ok := globals["favicon_sizes"]; ok {
		seq, ok := fv.(starlark.Indexable)
		if !ok {
			return nil, nil, fmt.Errorf("%s: %w: favicon_sizes must be a list, got %s", path, errTableFile, fv.Type())
		}
		for i := range seq.Len() {
			n, err := starlark.AsInt32(seq.Index(i))
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w: favicon_sizes[%d]: %v", path, errTableFile, i, err)
			}
			sizes = append(sizes, n)
		}
		if err := validateFaviconSizes(sizes); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return t, sizes, nil
}

func tableFromValue(v starlark.Value) (Table, error) {
	seq, ok := v.(starlark.Indexable)
	if !ok {
		return nil, fmt.Errorf("resolutions must be a list, got %s", v.Type())
	}
	var t Table
	for i := range seq.Len() {
		pair, err := pairOf(seq.Index(i))
		if err != nil {
			return nil, fmt.Errorf("resolutions[%d]: %v", i, err)
		}
		name, ok := starlark.AsString(pair[0])
		if !ok {
			return nil, fmt.Errorf("resolutions[%d]: platform must be a string, got %s", i, pair[0].Type())
		}
		list, ok := pair[1].(starlark.Indexable)
		if !ok {
			return nil, fmt.Errorf("%s: icons must be a list, got %s", name, pair[1].Type())
		}
		p := Platform{Name: name}
		for j := range list.Len() {
			ic, err := pairOf(list.Index(j))
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %v", name, j, err)
			}
			size, err := starlark.AsInt32(ic[0])
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: size: %v", name, j, err)
			}
			file, ok := starlark.AsString(ic[1])
			if !ok {
				return nil, fmt.Errorf("%s[%d]: file name must be a string, got %s", name, j, ic[1].Type())
			}
			p.Icons = append(p.Icons, Icon{Size: size, Name: file})
		}
		t = append(t, p)
	}
	return t, nil
}

// pairOf unpacks a two-element tuple or list.
func pairOf(v starlark.Value) ([2]starlark.Value, error) {
	seq, ok := v.(starlark.Indexable)
	if !ok || seq.Len() != 2 {
		return [2]starlark.Value{}, fmt.Errorf("want a pair, got %s", v)
	}
	return [2]starlark.Value{seq.Index(0), seq.Index(1)}, nil
}
