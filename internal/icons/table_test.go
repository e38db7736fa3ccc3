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

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	if err := table.Validate(); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, table.Total(), 26)

	counts := make(map[string]int)
	var order []string
	for _, p := range table {
		order = append(order, p.Name)
		counts[p.Name] = len(p.Icons)
	}
	testutil.AssertEqual(t, order, []string{"ios", "android", "web", "general"})
	testutil.AssertEqual(t, counts, map[string]int{"ios": 10, "android": 7, "web": 5, "general": 4})

	// Modifying one copy must not leak into the next.
	table[0].Icons[0].Size = 1
	testutil.AssertEqual(t, DefaultTable()[0].Icons[0].Size, 20)
}

func TestTableValidate(t *testing.T) {
	cases := map[string]struct {
		table   Table
		wantErr error
	}{
		"empty": {
			table:   Table{},
			wantErr: errTableEmpty,
		},
		"platform without icons": {
			table: Table{{Name: "web"}},
		},
		"empty platform name": {
			table:   Table{{Name: "", Icons: []Icon{{16, "a.png"}}}},
			wantErr: errPlatformName,
		},
		"platform name with separator": {
			table:   Table{{Name: "../web", Icons: []Icon{{16, "a.png"}}}},
			wantErr: errPlatformName,
		},
		"duplicate platform": {
			table:   Table{{Name: "web"}, {Name: "web"}},
			wantErr: errPlatformDup,
		},
		"zero size is left to the export": {
			table: Table{{Name: "web", Icons: []Icon{{0, "a.png"}}}},
		},
		"file name with separator": {
			table:   Table{{Name: "web", Icons: []Icon{{16, "sub/a.png"}}}},
			wantErr: errIconName,
		},
		"duplicate file name": {
			table:   Table{{Name: "web", Icons: []Icon{{16, "a.png"}, {32, "a.png"}}}},
			wantErr: errIconDup,
		},
		"same file name on different platforms": {
			table: Table{
				{Name: "ios", Icons: []Icon{{16, "a.png"}}},
				{Name: "web", Icons: []Icon{{16, "a.png"}}},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.table.Validate()

			// Don't use && because we want to trap all cases where err is
			// nil.
			if err == nil {
				if tc.wantErr != nil {
					t.Fatalf("must fail with error: %v", tc.wantErr)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error: %v", err)
			}
		})
	}
}

func TestTableCheckSizes(t *testing.T) {
	cases := map[string]struct {
		table   Table
		wantErr error
	}{
		"default":       {table: DefaultTable()},
		"zero size":     {table: Table{{Name: "web", Icons: []Icon{{16, "a.png"}, {0, "b.png"}}}}, wantErr: errIconSize},
		"negative size": {table: Table{{Name: "web", Icons: []Icon{{-16, "a.png"}}}}, wantErr: errIconSize},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.table.CheckSizes()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CheckSizes(): got error %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadTable(t *testing.T) {
	dir := newProject(t)
	table, sizes, err := LoadTable(filepath.Join(dir, "icons.star"))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, table, Table{
		{Name: "desktop", Icons: []Icon{{32, "icon-32.png"}, {64, "icon-64.png"}, {128, "icon-128.png"}}},
		{Name: "web", Icons: []Icon{{16, "favicon-16x16.png"}, {32, "favicon-32x32.png"}}},
	})
	testutil.AssertEqual(t, sizes, []int{16, 32, 48, 64})
}

func TestLoadTableErrors(t *testing.T) {
	cases := map[string]struct {
		src     string
		wantErr error
	}{
		"syntax error": {
			src: "resolutions = [",
		},
		"no resolutions": {
			src:     "favicon_sizes = [16]",
			wantErr: errTableFile,
		},
		"resolutions is not a list": {
			src:     `resolutions = "ios"`,
			wantErr: errTableFile,
		},
		"platform is not a pair": {
			src:     `resolutions = [("ios",)]`,
			wantErr: errTableFile,
		},
		"size is not an int": {
			src:     `resolutions = [("ios", [("20", "icon-20.png")])]`,
			wantErr: errTableFile,
		},
		"file name is not a string": {
			src:     `resolutions = [("ios", [(20, 20)])]`,
			wantErr: errTableFile,
		},
		"invalid table": {
			src:     `resolutions = [("ios", [(0, "icon-0.png")])]`,
			wantErr: errIconSize,
		},
		"invalid favicon sizes": {
			src:     "resolutions = [(\"ios\", [(20, \"icon-20.png\")])]\nfavicon_sizes = [16, -1]",
			wantErr: errFaviconSizes,
		},
		"favicon sizes is not a list": {
			src:     "resolutions = [(\"ios\", [(20, \"icon-20.png\")])]\nfavicon_sizes = 16",
			wantErr: errTableFile,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "icons.star")
			if err := os.WriteFile(path, []byte(tc.src), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, err := LoadTable(path)
			if err == nil {
				t.Fatal("LoadTable() succeeded, want error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error: %v, want %v", err, tc.wantErr)
			}
		})
	}
}
