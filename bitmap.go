package glcd

import "github.com/retroenv/retrogolib/log"

// DrawBitmap copies a packed monochrome bitmap into pixel memory with
// its upper left corner at (x,y).
//
// The bitmap layout is two header bytes, width then height, followed
// by width*(height/8) data bytes in page-major order; bit 0 of a data
// byte is the topmost pixel of its page row. With color Black the
// bytes are written as stored, with White they are complemented.
//
// When the destination is not page aligned, page bytes covered only
// partially by the bitmap would keep stale pixels from whatever was
// on screen before. The destination box is cleared to the background
// first whenever y or the bitmap height is not a multiple of 8, so
// every destination pixel ends up exactly as the bitmap specifies.
func (d *Display) DrawBitmap(bitmap []uint8, x, y int, color Color) {
	if len(bitmap) < 2 {
		return
	}
	width := int(bitmap[0])
	height := int(bitmap[1])
	data := bitmap[2:]

	d.trace("draw bitmap",
		log.Int("x", x), log.Int("y", y),
		log.Int("width", width), log.Int("height", height))

	if y%8 != 0 || height%8 != 0 {
		d.FillRect(x, y, width, height, White)
	}

	k := 0
	for j := 0; j < height/8; j++ {
		d.dev.GotoXY(x, y+j*8)
		for i := 0; i < width; i++ {
			if k >= len(data) {
				return
			}
			b := data[k]
			k++
			if color == Black {
				d.dev.WriteData(b)
			} else {
				d.dev.WriteData(^b)
			}
		}
	}
}
