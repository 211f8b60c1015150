package resource

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// Font is a packed glcd font.
//
// The serialized form starts with a 6 byte header:
//
//	bytes |
//	 0-1  | glyph data size; 0 marks a fixed width font
//	 2    | glyph width (fixed width fonts)
//	 3    | glyph height in pixels
//	 4    | first encoded character
//	 5    | character count
//
// A variable width font carries a table of one width byte per
// character after the header. Glyph data follows, one glyph per
// character in encoding order, stored page-major exactly like a
// Bitmap: (height+7)/8 pages of width bytes each, bit 0 on top.
type Font struct {
	Height    int
	FirstChar uint8
	Count     int

	fixedWidth int
	widths     []uint8
	glyphs     [][]uint8
}

// ReadFont parses a serialized font.
func ReadFont(b []byte) (*Font, error) {
	r := bytes.NewReader(b)

	var header struct {
		Size      uint16
		Width     uint8
		Height    uint8
		FirstChar uint8
		Count     uint8
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("font header: %w", err)
	}

	font := Font{
		Height:     int(header.Height),
		FirstChar:  header.FirstChar,
		Count:      int(header.Count),
		fixedWidth: int(header.Width),
		glyphs:     make([][]uint8, header.Count),
	}

	if header.Size != 0 {
		font.widths = make([]uint8, header.Count)
		if err := binary.Read(r, binary.LittleEndian, font.widths); err != nil {
			return nil, fmt.Errorf("font width table: %w", err)
		}
	}

	pages := (font.Height + 7) / 8
	for i := range font.glyphs {
		width := font.fixedWidth
		if font.widths != nil {
			width = int(font.widths[i])
		}

		glyph := make([]uint8, width*pages)
		if err := binary.Read(r, binary.LittleEndian, glyph); err != nil {
			return nil, fmt.Errorf("font glyph %d: %w", i, err)
		}
		font.glyphs[i] = glyph
	}

	return &font, nil
}

// Pages returns the number of page rows a glyph covers.
func (f *Font) Pages() int {
	return (f.Height + 7) / 8
}

// CharWidth returns the width of c in pixels, without the one pixel
// gap renderers leave between characters. Characters the font does
// not encode have width 0.
func (f *Font) CharWidth(c byte) int {
	i := int(c) - int(f.FirstChar)
	if i < 0 || i >= f.Count {
		return 0
	}
	if f.widths != nil {
		return int(f.widths[i])
	}
	return f.fixedWidth
}

// FixedWidth returns the glyph width of a fixed width font, or 0 for
// variable width fonts.
func (f *Font) FixedWidth() int {
	if f.widths != nil {
		return 0
	}
	return f.fixedWidth
}

// Glyph returns the page-major glyph data for c, or nil for
// characters the font does not encode.
func (f *Font) Glyph(c byte) []uint8 {
	i := int(c) - int(f.FirstChar)
	if i < 0 || i >= f.Count {
		return nil
	}
	return f.glyphs[i]
}

// GlyphString renders a glyph as text, one rune per pixel.
func (f *Font) GlyphString(c byte) string {
	glyph := f.Glyph(c)
	if glyph == nil {
		return ""
	}
	width := f.CharWidth(c)

	var sb strings.Builder
	for y := 0; y < f.Height; y++ {
		for x := 0; x < width; x++ {
			if glyph[(y/8)*width+x]&(1<<uint(y%8)) != 0 {
				sb.WriteRune('█')
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func mustFont(b []byte) *Font {
	f, err := ReadFont(b)
	if err != nil {
		panic(err)
	}
	return f
}
