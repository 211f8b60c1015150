// Package resource implements the packed binary resources consumed by
// the glcd engine: bitmaps and fonts.
package resource

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/32bitkid/bitreader"
)

// Bitmap is a packed monochrome image in the glcd memory layout:
// page-major data, 8 vertical pixels per byte, bit 0 on top. Width
// and height are limited to 255 by the serialized header.
type Bitmap struct {
	Width  int
	Height int
	data   []uint8
}

// ReadBitmap parses the serialized form: two header bytes (width,
// height) followed by width*(height/8) data bytes in page-major
// order.
func ReadBitmap(b []byte) (*Bitmap, error) {
	if len(b) < 2 {
		return nil, fmt.Errorf("bitmap header truncated: %d bytes", len(b))
	}
	width, height := int(b[0]), int(b[1])
	need := width * (height / 8)
	data := b[2:]
	if len(data) < need {
		return nil, fmt.Errorf("bitmap data truncated: have %d bytes, need %d", len(data), need)
	}

	bm := &Bitmap{
		Width:  width,
		Height: height,
		data:   make([]uint8, need),
	}
	copy(bm.data, data)
	return bm, nil
}

// FromRows converts row-major 1-bpp data into a Bitmap. Each source
// row is packed most significant bit first and padded to a whole
// number of bytes, the common export layout of xbm-style tools. A
// height that is not a multiple of 8 is padded up with background
// rows so the result renders page aligned.
func FromRows(width, height int, rows []byte) (*Bitmap, error) {
	if width > 255 || height > 255 {
		return nil, fmt.Errorf("bitmap too large: %dx%d", width, height)
	}

	pages := (height + 7) / 8
	bm := &Bitmap{
		Width:  width,
		Height: pages * 8,
		data:   make([]uint8, width*pages),
	}

	bits := bitreader.NewReader(bytes.NewReader(rows))
	pad := uint((8 - width%8) % 8)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			set, err := bits.Read1()
			if err != nil {
				return nil, fmt.Errorf("bitmap row %d: %w", y, err)
			}
			if set {
				bm.data[(y/8)*width+x] |= 1 << uint(y%8)
			}
		}
		if pad > 0 {
			if err := bits.Skip(pad); err != nil {
				return nil, fmt.Errorf("bitmap row %d: %w", y, err)
			}
		}
	}

	return bm, nil
}

// FromImage converts an image to a Bitmap by luminance threshold:
// pixels darker than 50% gray become foreground. A height that is
// not a multiple of 8 is padded up with background rows.
func FromImage(img image.Image) (*Bitmap, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > 255 || height > 255 {
		return nil, fmt.Errorf("bitmap too large: %dx%d", width, height)
	}

	pages := (height + 7) / 8
	bm := &Bitmap{
		Width:  width,
		Height: pages * 8,
		data:   make([]uint8, width*pages),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if r+g+b < 3*0x8000 {
				bm.data[(y/8)*width+x] |= 1 << uint(y%8)
			}
		}
	}

	return bm, nil
}

// Bytes returns the serialized form accepted by Display.DrawBitmap.
func (bm *Bitmap) Bytes() []uint8 {
	out := make([]uint8, 0, len(bm.data)+2)
	out = append(out, uint8(bm.Width), uint8(bm.Height))
	return append(out, bm.data...)
}

// BitAt reports whether the pixel at (x,y) is foreground.
func (bm *Bitmap) BitAt(x, y int) bool {
	if x < 0 || x >= bm.Width || y < 0 || y >= bm.Height {
		return false
	}
	return bm.data[(y/8)*bm.Width+x]&(1<<uint(y%8)) != 0
}

func (bm *Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if bm.BitAt(x, y) {
				sb.WriteRune('█')
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
