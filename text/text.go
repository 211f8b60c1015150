// Package text renders packed glcd fonts into pixel memory. The
// renderer consumes the same Device primitives as the drawing engine
// and keeps its own cursor, so a display and its text can share one
// device without sharing state.
package text

import (
	"fmt"

	glcd "github.com/ADVALAIN596/glcd-arduino"
	"github.com/ADVALAIN596/glcd-arduino/resource"
)

// EraseLine selects which part of the current text line EraseTextLine
// clears.
type EraseLine int

const (
	EraseToEOL   EraseLine = iota // from the cursor to the right edge
	EraseFromBOL                  // from the left edge to the cursor
	EraseFullLine
)

// Renderer draws characters onto a Device. The zero cursor is the
// upper left corner; rendering wraps to a new line at the right edge.
type Renderer struct {
	dev   glcd.Device
	font  *resource.Font
	color glcd.Color

	width  int
	height int
	x, y   int
}

// New returns a renderer covering the whole device, drawing in the
// foreground color. Select a font before rendering.
func New(dev glcd.Device) *Renderer {
	width, height := dev.Size()
	return &Renderer{
		dev:    dev,
		color:  glcd.Black,
		width:  width,
		height: height,
	}
}

// SelectFont sets the font and drawing color for subsequent output.
func (r *Renderer) SelectFont(font *resource.Font, color glcd.Color) {
	r.font = font
	r.color = color
}

// SetFontColor changes the drawing color without changing the font.
func (r *Renderer) SetFontColor(color glcd.Color) {
	r.color = color
}

// CursorToXY moves the text cursor to the pixel position (x,y).
func (r *Renderer) CursorToXY(x, y int) {
	r.x, r.y = x, y
}

// CursorTo moves the cursor to a character cell, counted in glyph
// cells of the selected fixed width font.
func (r *Renderer) CursorTo(column, row int) {
	if r.font == nil {
		return
	}
	r.x = column * (r.font.FixedWidth() + 1)
	r.y = row * (r.font.Height + 1)
}

// CharWidth returns the number of columns c advances the cursor,
// including the one pixel gap after the glyph. Characters the font
// does not encode return 0.
func (r *Renderer) CharWidth(c byte) int {
	if r.font == nil {
		return 0
	}
	if width := r.font.CharWidth(c); width > 0 {
		return width + 1
	}
	return 0
}

// StringWidth returns the width of s in pixels when rendered in the
// selected font.
func (r *Renderer) StringWidth(s string) int {
	width := 0
	for i := 0; i < len(s); i++ {
		width += r.CharWidth(s[i])
	}
	return width
}

// PutChar renders one character at the cursor and advances the
// cursor, wrapping to the next line at the right edge. Both glyph
// bits are painted: set bits in the drawing color, clear bits and the
// trailing gap column in the opposite color, so text overwrites
// whatever was under it.
func (r *Renderer) PutChar(c byte) {
	if r.font == nil {
		return
	}
	if c == '\n' {
		r.newline()
		return
	}

	glyph := r.font.Glyph(c)
	if glyph == nil {
		return
	}
	width := r.font.CharWidth(c)

	if r.x+width > r.width {
		r.newline()
	}

	bg := r.color.Opposite()
	for row := 0; row < r.font.Height; row++ {
		for i := 0; i < width; i++ {
			on := glyph[(row/8)*width+i]&(1<<uint(row%8)) != 0
			if on {
				r.dev.SetDot(r.x+i, r.y+row, r.color)
			} else {
				r.dev.SetDot(r.x+i, r.y+row, bg)
			}
		}
		r.dev.SetDot(r.x+width, r.y+row, bg)
	}

	r.x += width + 1
}

// Puts renders a string at the cursor.
func (r *Renderer) Puts(s string) {
	for i := 0; i < len(s); i++ {
		r.PutChar(s[i])
	}
}

// Printf formats with fmt.Sprintf and renders the result.
func (r *Renderer) Printf(format string, args ...any) {
	r.Puts(fmt.Sprintf(format, args...))
}

// EraseTextLine clears part of the current text line to the
// background color. The cursor does not move.
func (r *Renderer) EraseTextLine(mode EraseLine) {
	switch mode {
	case EraseToEOL:
		r.eraseRegion(r.x, r.width-1)
	case EraseFromBOL:
		r.eraseRegion(0, r.x-1)
	case EraseFullLine:
		r.eraseRegion(0, r.width-1)
	}
}

func (r *Renderer) eraseRegion(x1, x2 int) {
	if r.font == nil {
		return
	}
	bg := r.color.Opposite()
	for y := r.y; y < r.y+r.font.Height && y < r.height; y++ {
		for x := x1; x <= x2; x++ {
			r.dev.SetDot(x, y, bg)
		}
	}
}

func (r *Renderer) newline() {
	r.x = 0
	r.y += r.font.Height + 1
}
