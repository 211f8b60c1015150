package screen

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const lcdCell = 6

var (
	backlight = color.RGBA{R: 0xC6, G: 0xCE, B: 0x6A, A: 0xFF}
	pixelOn   = color.RGBA{R: 0x23, G: 0x28, B: 0x17, A: 0xFF}
)

// RenderToLCD renders a monochrome source image the way it looks on a
// transflective STN panel: each source pixel becomes a 6x6 cell on a
// yellow-green backlight, dark cells for set pixels, a thin gutter
// between cells, and a little ghosting next to lit neighbors.
func RenderToLCD(src image.Image) image.Image {
	srcRect := src.Bounds()
	w, h := srcRect.Dx(), srcRect.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, w*lcdCell, h*lcdCell))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, srcRect, draw.Src, nil)

	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			on := isDark(dst.At(cx*lcdCell, cy*lcdCell))
			leftOn := cx > 0 && isDark(dst.At((cx-1)*lcdCell, cy*lcdCell))
			rightOn := cx < w-1 && isDark(dst.At((cx+1)*lcdCell, cy*lcdCell))

			var face color.Color = backlight
			if on {
				face = pixelOn
			} else if leftOn || rightOn {
				// Ghosting
				face = rgbMix(face, pixelOn, 0.08)
			}

			for i := 0; i < lcdCell*lcdCell; i++ {
				ix, iy := i%lcdCell, i/lcdCell
				co := face

				switch {
				case ix == lcdCell-1 || iy == lcdCell-1:
					// Gutter
					co = darken(co, 0.15)
				case on && (ix == 0 || iy == 0):
					co = rgbMix(co, backlight, 0.25)
				}

				dst.Set(cx*lcdCell+ix, cy*lcdCell+iy, co)
			}
		}
	}

	return dst
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r+g+b < 3*0x8000
}
