package glcd

import "github.com/retroenv/retrogolib/log"

// DrawCircle draws a circle of the given radius centered on
// (xCenter,yCenter). Because the circle is drawn outward from the
// center pixel the diameter is 2*radius+1 pixels.
//
// A circle is the rounded rectangle whose straight edges have
// vanished, and it is drawn exactly that way.
func (d *Display) DrawCircle(xCenter, yCenter, radius int, color Color) {
	d.DrawRoundRect(xCenter-radius, yCenter-radius, 2*radius, 2*radius, radius, color)
}

// FillCircle draws a filled circle of the given radius centered on
// (x0,y0). See DrawCircle for sizing.
//
// The boundary points come from the same midpoint stepping as
// DrawRoundRect, but instead of plotting them the fill connects the
// upper and lower quadrant points with vertical chords through
// DrawLine, giving full 8-way symmetric coverage.
func (d *Display) FillCircle(x0, y0, radius int, color Color) {
	d.trace("fill circle",
		log.Int("x", x0), log.Int("y", y0), log.Int("radius", radius))

	f := 1 - radius
	ddFx := 1
	ddFy := -2 * radius
	x := 0
	y := radius

	// Seed the center column so a zero-step circle is still filled.
	d.DrawLine(x0, y0-radius, x0, y0+radius, color)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		d.DrawLine(x0+x, y0+y, x0+x, y0-y, color)
		d.DrawLine(x0-x, y0+y, x0-x, y0-y, color)
		d.DrawLine(x0+y, y0+x, x0+y, y0-x, color)
		d.DrawLine(x0-y, y0+x, x0-y, y0-x, color)
	}
}
