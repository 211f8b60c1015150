package glcd

import "github.com/retroenv/retrogolib/log"

// DrawRect draws the outline of a rectangle with its upper left
// corner at (x,y) and its lower right corner at (x+width,y+height),
// so the drawn box spans width+1 by height+1 pixels.
//
// Note that the width and height parameters work differently than
// FillRect, which matches this sizing only because it extends its box
// by one pixel in each direction (see FillRect).
func (d *Display) DrawRect(x, y, width, height int, color Color) {
	d.trace("draw rect",
		log.Int("x", x), log.Int("y", y),
		log.Int("width", width), log.Int("height", height))

	d.DrawHLine(x, y, width, color)        // top
	d.DrawHLine(x, y+height, width, color) // bottom
	d.DrawVLine(x, y, height, color)       // left
	d.DrawVLine(x+width, y, height, color) // right
}

// DrawRoundRect draws the same outline as DrawRect but with corners
// rounded to the given radius, plotted with the midpoint circle
// stepping and mirrored into all four corners.
//
// The caller must keep radius at or below half the smaller of width
// and height; larger radii produce malformed, overlapping corners.
// No check is made.
func (d *Display) DrawRoundRect(x, y, width, height, radius int, color Color) {
	d.trace("draw round rect",
		log.Int("x", x), log.Int("y", y),
		log.Int("width", width), log.Int("height", height),
		log.Int("radius", radius))

	tSwitch := 3 - 2*radius
	x1, y1 := 0, radius

	for x1 <= y1 {
		d.dev.SetDot(x+radius-x1, y+radius-y1, color)
		d.dev.SetDot(x+radius-y1, y+radius-x1, color)

		d.dev.SetDot(x+width-radius+x1, y+radius-y1, color)
		d.dev.SetDot(x+width-radius+y1, y+radius-x1, color)

		d.dev.SetDot(x+width-radius+x1, y+height-radius+y1, color)
		d.dev.SetDot(x+width-radius+y1, y+height-radius+x1, color)

		d.dev.SetDot(x+radius-x1, y+height-radius+y1, color)
		d.dev.SetDot(x+radius-y1, y+height-radius+x1, color)

		if tSwitch < 0 {
			tSwitch += 4*x1 + 6
		} else {
			tSwitch += 4*(x1-y1) + 10
			y1--
		}
		x1++
	}

	d.DrawHLine(x+radius, y, width-2*radius, color)        // top
	d.DrawHLine(x+radius, y+height, width-2*radius, color) // bottom
	d.DrawVLine(x, y+radius, height-2*radius, color)       // left
	d.DrawVLine(x+width, y+radius, height-2*radius, color) // right
}

// FillRect fills the closed box from (x,y) to (x+width,y+height) with
// the given color, covering width+1 by height+1 pixels. The fill is
// written as solid page bytes rather than per pixel.
func (d *Display) FillRect(x, y, width, height int, color Color) {
	d.trace("fill rect",
		log.Int("x", x), log.Int("y", y),
		log.Int("width", width), log.Int("height", height))

	d.setPixels(x, y, x+width, y+height, color)
}

// InvertRect flips every pixel in the closed box from (x,y) to
// (x+width,y+height), the same region FillRect covers. Applying it
// twice restores the original pixels.
func (d *Display) InvertRect(x, y, width, height int) {
	d.trace("invert rect",
		log.Int("x", x), log.Int("y", y),
		log.Int("width", width), log.Int("height", height))

	height++

	pageOffset := y % 8
	y -= pageOffset

	// Mask for the first, possibly partial, page: bits from
	// pageOffset up to either the page top or the bottom of the
	// region, whichever comes first.
	mask := uint8(0xFF)
	var h int
	if height < 8-pageOffset {
		mask >>= uint(8 - height)
		h = height
	} else {
		h = 8 - pageOffset
	}
	mask <<= uint(pageOffset)

	d.rmwPage(x, y, width+1, func(data uint8) uint8 {
		return mergeInvert(data, mask)
	})

	// Full pages inside the region flip without a mask.
	for h+8 <= height {
		h += 8
		y += 8
		d.rmwPage(x, y, width+1, func(data uint8) uint8 {
			return ^data
		})
	}

	// Trailing partial page, when the region bottom is not on a page
	// boundary.
	if h < height {
		mask = ^(uint8(0xFF) << uint(height-h))
		d.rmwPage(x, y+8, width+1, func(data uint8) uint8 {
			return mergeInvert(data, mask)
		})
	}
}

// mergeInvert flips only the masked bits of data.
func mergeInvert(data, mask uint8) uint8 {
	return (^data & mask) | (data & ^mask)
}

// setPixels sets every pixel in the closed box from (x1,y1) to
// (x2,y2), walking the covered pages top to bottom: a masked
// read-modify-write for the first partial page, straight color bytes
// for every full page, and a second masked pass for a trailing
// partial page.
func (d *Display) setPixels(x1, y1, x2, y2 int, color Color) {
	width := x2 - x1 + 1
	height := y2 - y1 + 1

	pageOffset := y1 % 8
	y := y1 - pageOffset

	mask := uint8(0xFF)
	var h int
	if height < 8-pageOffset {
		mask >>= uint(8 - height)
		h = height
	} else {
		h = 8 - pageOffset
	}
	mask <<= uint(pageOffset)

	merge := func(data uint8) uint8 {
		if color == Black {
			return data | mask
		}
		return data &^ mask
	}

	d.rmwPage(x1, y, width, merge)

	for h+8 <= height {
		h += 8
		y += 8
		d.dev.GotoXY(x1, y)
		for i := 0; i < width; i++ {
			d.dev.WriteData(color.fill())
		}
	}

	if h < height {
		mask = ^(uint8(0xFF) << uint(height-h))
		d.rmwPage(x1, y+8, width, merge)
	}
}

// rmwPage applies fn to width consecutive page bytes of the page row
// starting at column x. ReadData advances the cursor past the column
// it returned, so the cursor is stepped back onto that column before
// the byte is written.
func (d *Display) rmwPage(x, y, width int, fn func(uint8) uint8) {
	d.dev.GotoXY(x, y)
	for i := 0; i < width; i++ {
		data := d.dev.ReadData()
		d.dev.GotoXY(x+i, y)
		d.dev.WriteData(fn(data))
	}
}
