package glcd_test

import (
	"testing"

	glcd "github.com/ADVALAIN596/glcd-arduino"
	"github.com/ADVALAIN596/glcd-arduino/screen"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newDisplay(t *testing.T, width, height int) (*glcd.Display, *screen.Buffer) {
	t.Helper()
	buf := screen.NewBuffer(width, height)
	return glcd.New(buf), buf
}

// seedPattern scatters a deterministic pixel pattern over the buffer.
func seedPattern(buf *screen.Buffer) {
	width, height := buf.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x*31+y*17)%5 < 2 {
				buf.SetDot(x, y, glcd.Black)
			}
		}
	}
}

func TestNewClearsScreen(t *testing.T) {
	buf := screen.NewBuffer(128, 64)
	seedPattern(buf)

	glcd.New(buf)

	for i, b := range buf.Bytes() {
		if b != 0 {
			t.Fatalf("page byte %d not cleared: %08b", i, b)
		}
	}
}

func TestClearScreen(t *testing.T) {
	d, buf := newDisplay(t, 128, 64)

	d.ClearScreen(glcd.Black)
	for i, b := range buf.Bytes() {
		if b != 0xFF {
			t.Fatalf("page byte %d = %08b, want 11111111", i, b)
		}
	}

	d.ClearScreen(glcd.White)
	for i, b := range buf.Bytes() {
		if b != 0x00 {
			t.Fatalf("page byte %d = %08b, want 00000000", i, b)
		}
	}
}

func TestClearPage(t *testing.T) {
	d, buf := newDisplay(t, 32, 16)

	d.ClearPage(1, glcd.Black)

	data := buf.Bytes()
	for x := 0; x < 32; x++ {
		assert.Equal(t, uint8(0x00), data[x])
		assert.Equal(t, uint8(0xFF), data[32+x])
	}
}

func TestClearPageRangeClamps(t *testing.T) {
	d, buf := newDisplay(t, 128, 64)

	d.ClearPageRange(0, 120, 20, glcd.Black)

	data := buf.Bytes()
	assert.Equal(t, uint8(0x00), data[119])
	for x := 120; x < 128; x++ {
		assert.Equal(t, uint8(0xFF), data[x])
	}
}

func TestSetDisplayModeInverts(t *testing.T) {
	d, buf := newDisplay(t, 128, 64)
	assert.False(t, d.Inverted())

	d.SetDisplayMode(true)
	assert.True(t, d.Inverted())
	for i, b := range buf.Bytes() {
		if b != 0xFF {
			t.Fatalf("page byte %d = %08b after invert, want 11111111", i, b)
		}
	}

	d.SetDisplayMode(false)
	assert.False(t, d.Inverted())
	for i, b := range buf.Bytes() {
		if b != 0x00 {
			t.Fatalf("page byte %d = %08b after revert, want 00000000", i, b)
		}
	}
}

func TestSetDisplayModeIdempotent(t *testing.T) {
	d, buf := newDisplay(t, 128, 64)
	seedPattern(buf)
	before := buf.Bytes()

	d.SetDisplayMode(false)
	assert.Equal(t, before, buf.Bytes())

	d.SetDisplayMode(true)
	inverted := buf.Bytes()
	d.SetDisplayMode(true)
	assert.Equal(t, inverted, buf.Bytes())
}

func TestWithInverted(t *testing.T) {
	buf := screen.NewBuffer(64, 32)
	d := glcd.New(buf, glcd.WithInverted(true))
	assert.True(t, d.Inverted())

	// Already inverted, so requesting inverted mode touches nothing.
	before := buf.Bytes()
	d.SetDisplayMode(true)
	assert.Equal(t, before, buf.Bytes())
}

func TestWithLogger(t *testing.T) {
	buf := screen.NewBuffer(64, 32)
	d := glcd.New(buf, glcd.WithLogger(log.NewTestLogger(t)))

	// Every traced operation once.
	d.DrawLine(0, 0, 10, 10, glcd.Black)
	d.DrawRect(2, 2, 10, 10, glcd.Black)
	d.DrawRoundRect(20, 2, 12, 12, 3, glcd.Black)
	d.FillRect(4, 4, 2, 2, glcd.White)
	d.InvertRect(0, 0, 5, 5)
	d.FillCircle(20, 16, 5, glcd.Black)
	d.DrawBitmap([]uint8{4, 8, 1, 2, 3, 4}, 40, 20, glcd.Black)
	d.ClearScreen(glcd.White)
	d.SetDisplayMode(true)
}

func TestDisplaySize(t *testing.T) {
	d, _ := newDisplay(t, 192, 64)
	assert.Equal(t, 192, d.Width())
	assert.Equal(t, 64, d.Height())
}
