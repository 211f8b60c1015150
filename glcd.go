// Package glcd implements the drawing engine for page-addressed
// monochrome graphic LCDs in the ks0108 family.
//
// Pixel memory on these panels is organized into horizontal "pages",
// each page 8 pixels tall and one byte wide per column: bit 0 of the
// byte at (x, page) is the pixel at (x, page*8), bit 7 the pixel at
// (x, page*8+7). The engine itself never talks to hardware; it draws
// through the small Device interface, so it works the same against a
// real panel driver or the in-memory buffer in the screen package.
package glcd

import (
	"github.com/retroenv/retrogolib/log"
)

// Device is the page-addressed pixel memory the engine draws into.
//
// The cursor set by GotoXY advances by one column on every WriteData
// and ReadData call. The engine always positions the cursor itself
// before the first access of an operation and never assumes it
// survived a previous call. Every operation positions the cursor on a
// page boundary except the bitmap blitter, which may leave it at any
// row.
type Device interface {
	// Size returns the pixel dimensions of the device. The height is
	// a multiple of 8.
	Size() (width, height int)

	// GotoXY moves the cursor to column x, row y.
	GotoXY(x, y int)

	// WriteData stores one vertical byte at the cursor and advances
	// the cursor one column. At a page-aligned cursor the byte
	// replaces the stored page byte; at an unaligned cursor it spans
	// two pages and is OR-ed into both, so unaligned writes need a
	// cleared background to come out exact.
	WriteData(data uint8)

	// ReadData returns the vertical byte at the cursor and advances
	// the cursor one column.
	ReadData() uint8

	// SetDot sets or clears a single pixel without disturbing the
	// other seven pixels sharing its page byte.
	SetDot(x, y int, color Color)
}

// Display is the drawing engine for a single Device.
//
// All operations run synchronously to completion in the caller's
// goroutine. Display performs no locking; callers that share one
// Display across goroutines must serialize access themselves.
type Display struct {
	dev    Device
	width  int
	height int

	inverted bool
	logger   *log.Logger
}

// Option configures a Display.
type Option func(*Display)

// WithLogger enables debug tracing of drawing operations.
func WithLogger(logger *log.Logger) Option {
	return func(d *Display) {
		d.logger = logger
	}
}

// WithInverted sets the initial display mode flag without touching
// pixel memory. Use it when the device backend was initialized in
// inverted mode.
func WithInverted(inverted bool) Option {
	return func(d *Display) {
		d.inverted = inverted
	}
}

// New returns a Display drawing into dev and clears the screen to the
// background color.
func New(dev Device, opts ...Option) *Display {
	width, height := dev.Size()
	d := &Display{
		dev:    dev,
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.ClearScreen(White)
	return d
}

// Width returns the width of the underlying device in pixels.
func (d *Display) Width() int { return d.width }

// Height returns the height of the underlying device in pixels.
func (d *Display) Height() int { return d.height }

// Inverted reports whether the display is in inverted mode.
func (d *Display) Inverted() bool { return d.inverted }

// ClearPage fills one full row of pages with the given color.
func (d *Display) ClearPage(page int, color Color) {
	d.ClearPageRange(page, 0, d.width, color)
}

// ClearPageRange fills length page bytes of one page row starting at
// column startX. The length is clamped so the write never runs past
// the right edge.
func (d *Display) ClearPageRange(page, startX, length int, color Color) {
	if startX+length > d.width {
		length = d.width - startX
	}

	d.dev.GotoXY(startX, page*8)
	for ; length > 0; length-- {
		d.dev.WriteData(color.fill())
	}
}

// ClearScreen sets every pixel on the display to the given color.
//
// Note that with the display in inverted mode, clearing to White
// paints the screen dark and clearing to Black paints it light.
func (d *Display) ClearScreen(color Color) {
	d.trace("clear screen", log.Uint8("color", uint8(color)))
	for page := 0; page < d.height/8; page++ {
		d.ClearPage(page, color)
	}
}

// SetDisplayMode switches the display between normal and inverted
// mode by inverting the entire screen region. Requesting the mode the
// display is already in touches no pixels.
func (d *Display) SetDisplayMode(inverted bool) {
	if d.inverted == inverted {
		return
	}
	d.trace("set display mode", log.Bool("inverted", inverted))
	d.InvertRect(0, 0, d.width-1, d.height-1)
	d.inverted = inverted
}

func (d *Display) trace(op string, fields ...any) {
	if d.logger != nil {
		d.logger.Debug(op, fields...)
	}
}
