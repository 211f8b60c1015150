package screen

import (
	"image"
	"testing"

	glcd "github.com/ADVALAIN596/glcd-arduino"
	"github.com/retroenv/retrogolib/assert"
)

func luminance(img image.Image, x, y int) uint32 {
	r, g, b, _ := img.At(x, y).RGBA()
	return r + g + b
}

func TestRenderToLCDBounds(t *testing.T) {
	buf := NewBuffer(8, 16)
	img := RenderToLCD(buf)

	assert.Equal(t, image.Rect(0, 0, 8*lcdCell, 16*lcdCell), img.Bounds())
}

func TestRenderToLCDCells(t *testing.T) {
	buf := NewBuffer(8, 8)
	buf.SetDot(3, 2, glcd.Black)
	img := RenderToLCD(buf)

	// Sample cell centers, away from gutters and edge highlights.
	on := luminance(img, 3*lcdCell+2, 2*lcdCell+2)
	off := luminance(img, 5*lcdCell+2, 5*lcdCell+2)

	assert.True(t, on < off, "lit cell is not darker than the backlight")
	assert.True(t, isDark(img.At(3*lcdCell+2, 2*lcdCell+2)))
	assert.False(t, isDark(img.At(5*lcdCell+2, 5*lcdCell+2)))
}

func TestRenderToLCDGhosting(t *testing.T) {
	buf := NewBuffer(8, 8)
	buf.SetDot(3, 2, glcd.Black)
	img := RenderToLCD(buf)

	neighbor := luminance(img, 4*lcdCell+2, 2*lcdCell+2)
	far := luminance(img, 6*lcdCell+2, 5*lcdCell+2)

	assert.True(t, neighbor < far, "no ghosting next to the lit cell")
}
