// Package screen provides an in-memory pixel memory for the glcd
// drawing engine, plus helpers for turning its contents into regular
// images.
package screen

import (
	"image"
	"image/color"
	"strings"

	glcd "github.com/ADVALAIN596/glcd-arduino"
)

// Palette is the two-color model of the buffer: index 0 is the
// background, index 1 the foreground. Encoders such as png handle a
// two-color paletted image as a 1-bit image.
var Palette = color.Palette{color.White, color.Black}

// Buffer is page-packed pixel memory with the cursor semantics of a
// ks0108 controller: one byte covers 8 vertical pixels, and the
// cursor advances one column on every read or write. It implements
// glcd.Device and image.PalettedImage.
type Buffer struct {
	width  int
	height int
	data   []uint8 // page-major: data[page*width+x]

	cx int
	cy int
}

var _ glcd.Device = (*Buffer)(nil)
var _ image.PalettedImage = (*Buffer)(nil)

// NewBuffer returns a cleared buffer of the given dimensions. The
// height must be a positive multiple of 8.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 || height%8 != 0 {
		panic("screen: buffer height must be a positive multiple of 8")
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height/8),
	}
}

// Size returns the pixel dimensions of the buffer.
func (buf *Buffer) Size() (width, height int) {
	return buf.width, buf.height
}

// GotoXY moves the cursor to column x, row y. Out-of-range
// coordinates leave the cursor where it was.
func (buf *Buffer) GotoXY(x, y int) {
	if x < 0 || x >= buf.width || y < 0 || y >= buf.height {
		return
	}
	buf.cx = x
	buf.cy = y
}

// WriteData stores one page byte at the cursor and advances the
// cursor one column.
//
// At a page-aligned cursor the byte replaces the stored one. At an
// unaligned cursor the byte spans two pages and is OR-ed into both,
// the split the ks0108 driver performs, so pixels above and below the
// written span survive and an exact unaligned write needs cleared
// memory underneath. Writes past the right edge are dropped.
func (buf *Buffer) WriteData(data uint8) {
	if buf.cx >= buf.width {
		return
	}

	page := buf.cy / 8
	yOffset := uint(buf.cy % 8)

	if yOffset == 0 {
		buf.data[page*buf.width+buf.cx] = data
		buf.cx++
		return
	}

	buf.data[page*buf.width+buf.cx] |= data << yOffset
	if page+1 < buf.height/8 {
		buf.data[(page+1)*buf.width+buf.cx] |= data >> (8 - yOffset)
	}
	buf.cx++
}

// ReadData returns the page byte at the cursor and advances the
// cursor one column. At an unaligned cursor the byte is reassembled
// from the two pages the matching write splits across. Reads past the
// right edge return 0.
func (buf *Buffer) ReadData() uint8 {
	if buf.cx >= buf.width {
		return 0
	}

	page := buf.cy / 8
	yOffset := uint(buf.cy % 8)

	data := buf.data[page*buf.width+buf.cx] >> yOffset
	if yOffset != 0 && page+1 < buf.height/8 {
		data |= buf.data[(page+1)*buf.width+buf.cx] << (8 - yOffset)
	}
	buf.cx++
	return data
}

// SetDot sets or clears the single pixel at (x,y), leaving the other
// pixels of its page byte untouched. Out-of-range dots are dropped.
func (buf *Buffer) SetDot(x, y int, c glcd.Color) {
	if x < 0 || x >= buf.width || y < 0 || y >= buf.height {
		return
	}
	i := (y/8)*buf.width + x
	bit := uint8(1) << uint(y%8)
	if c == glcd.Black {
		buf.data[i] |= bit
	} else {
		buf.data[i] &^= bit
	}
}

// BitAt reports whether the pixel at (x,y) is set.
func (buf *Buffer) BitAt(x, y int) bool {
	if x < 0 || x >= buf.width || y < 0 || y >= buf.height {
		return false
	}
	return buf.data[(y/8)*buf.width+x]&(1<<uint(y%8)) != 0
}

// Bytes returns a copy of the raw page memory in page-major order.
func (buf *Buffer) Bytes() []uint8 {
	data := make([]uint8, len(buf.data))
	copy(data, buf.data)
	return data
}

func (buf *Buffer) ColorModel() color.Model {
	return Palette
}

func (buf *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, buf.width, buf.height)
}

func (buf *Buffer) At(x, y int) color.Color {
	return Palette[buf.ColorIndexAt(x, y)]
}

func (buf *Buffer) ColorIndexAt(x, y int) uint8 {
	if buf.BitAt(x, y) {
		return 1
	}
	return 0
}

func (buf *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < buf.height; y++ {
		for x := 0; x < buf.width; x++ {
			if buf.BitAt(x, y) {
				sb.WriteRune('█')
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
