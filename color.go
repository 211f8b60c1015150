package glcd

// Color is the binary pixel value. Black is the foreground (a lit
// pixel on a non-inverted panel), White the background. With the
// display in inverted mode the apparent colors swap; the stored bits
// do not change.
//
// The numeric values double as the page fill patterns the ks0108
// expects, so a Color can be written straight to a page byte.
type Color uint8

const (
	White Color = 0x00
	Black Color = 0xFF
)

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// fill is the byte that paints a full page column in this color.
func (c Color) fill() uint8 { return uint8(c) }

// Opposite returns the other color.
func (c Color) Opposite() Color {
	if c == Black {
		return White
	}
	return Black
}
