package glcd

import "github.com/retroenv/retrogolib/log"

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// DrawLine draws a line from (x1,y1) to (x2,y2) using Bresenham's
// algorithm. Endpoint coordinates outside the display are coerced to
// 0 rather than rejected. Drawing the same endpoints in either order
// paints the identical set of pixels.
func (d *Display) DrawLine(x1, y1, x2, y2 int, color Color) {
	d.trace("draw line",
		log.Int("x1", x1), log.Int("y1", y1),
		log.Int("x2", x2), log.Int("y2", y2))

	if x1 < 0 || x1 >= d.width {
		x1 = 0
	}
	if x2 < 0 || x2 >= d.width {
		x2 = 0
	}
	if y1 < 0 || y1 >= d.height {
		y1 = 0
	}
	if y2 < 0 || y2 >= d.height {
		y2 = 0
	}

	// Iterate along the major axis; for steep lines swap the axis
	// roles so the loop still advances one whole step at a time.
	steep := absDiff(y1, y2) > absDiff(x1, x2)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	deltax := x2 - x1
	deltay := absDiff(y1, y2)
	err := deltax / 2
	ystep := -1
	if y1 < y2 {
		ystep = 1
	}

	y := y1
	for x := x1; x <= x2; x++ {
		if steep {
			d.dev.SetDot(y, x, color)
		} else {
			d.dev.SetDot(x, y, color)
		}
		err -= deltay
		if err < 0 {
			y += ystep
			err += deltax
		}
	}
}

// DrawHLine draws a horizontal line of width+1 pixels starting at
// (x,y). It writes page bytes directly instead of going through
// DrawLine.
func (d *Display) DrawHLine(x, y, width int, color Color) {
	d.setPixels(x, y, x+width, y, color)
}

// DrawVLine draws a vertical line of height+1 pixels starting at
// (x,y). It writes page bytes directly instead of going through
// DrawLine.
func (d *Display) DrawVLine(x, y, height int, color Color) {
	d.setPixels(x, y, x, y+height, color)
}
