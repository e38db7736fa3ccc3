// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package render

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"image/png"
	"os"
)

// ICOBundler packs PNG images into an ICO file, storing each of them as is.
// Every image must be square and at most 256 pixels wide.
type ICOBundler struct{}

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	icoMaxSize    = 256
)

// Pack writes srcs, in order, into the ICO file dst.
func (ICOBundler) Pack(ctx context.Context, srcs []string, dst string) error {
	if len(srcs) == 0 {
		return errors.New("no images to pack")
	}
	if len(srcs) > 0xffff {
		return fmt.Errorf("too many images: %d", len(srcs))
	}

	var (
		images [][]byte
		sizes  []int
	)
	for _, src := range srcs {
		if err := ctx.Err(); err != nil {
			return err
		}
		b, err := os.ReadFile(src)
		if err != nil {
			return err
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(b))
		if err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
		if cfg.Width != cfg.Height {
			return fmt.Errorf("%s: image is %dx%d, want a square", src, cfg.Width, cfg.Height)
		}
		if cfg.Width > icoMaxSize {
			return fmt.Errorf("%s: image is %d pixels wide, at most %d is allowed", src, cfg.Width, icoMaxSize)
		}
		images = append(images, b)
		sizes = append(sizes, cfg.Width)
	}

	return os.WriteFile(dst, encodeICO(sizes, images), 0o644)
}

// encodeICO builds an ICO file from PNG-encoded images.
func encodeICO(sizes []int, images [][]byte) []byte {
	var buf bytes.Buffer
	n := len(images)

	// Header: reserved, type (1 is icon), count.
	binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, uint16(n)})

	offset := uint32(icoHeaderSize + icoEntrySize*n)
	for i, img := range images {
		// Width, height, palette size, reserved. A size of 256 is stored as 0.
		dim := byte(sizes[i] % icoMaxSize)
		buf.Write([]byte{dim, dim, 0, 0})
		binary.Write(&buf, binary.LittleEndian, uint16(1))        // color planes
		binary.Write(&buf, binary.LittleEndian, uint16(32))       // bits per pixel
		binary.Write(&buf, binary.LittleEndian, uint32(len(img))) // data size
		binary.Write(&buf, binary.LittleEndian, offset)           // data offset
		offset += uint32(len(img))
	}
	for _, img := range images {
		buf.Write(img)
	}
	return buf.Bytes()
}
