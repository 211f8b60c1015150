package text_test

import (
	"testing"

	glcd "github.com/ADVALAIN596/glcd-arduino"
	"github.com/ADVALAIN596/glcd-arduino/resource"
	"github.com/ADVALAIN596/glcd-arduino/screen"
	"github.com/ADVALAIN596/glcd-arduino/text"
	"github.com/retroenv/retrogolib/assert"
)

func newRenderer(t *testing.T) (*text.Renderer, *screen.Buffer) {
	t.Helper()
	buf := screen.NewBuffer(64, 48)
	r := text.New(buf)
	r.SelectFont(resource.System5x7, glcd.Black)
	return r, buf
}

func TestPutCharGlyphPixels(t *testing.T) {
	r, buf := newRenderer(t)

	// '|' is a single full height column at x=2 of the 5x7 glyph.
	r.PutChar('|')

	for y := 0; y < 7; y++ {
		for x := 0; x < 6; x++ {
			want := x == 2
			if buf.BitAt(x, y) != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, buf.BitAt(x, y), want)
			}
		}
	}
}

func TestPutCharOverwritesBackground(t *testing.T) {
	r, buf := newRenderer(t)
	for y := 0; y < 7; y++ {
		for x := 0; x < 6; x++ {
			buf.SetDot(x, y, glcd.Black)
		}
	}

	r.PutChar('|')

	// Clear glyph bits and the gap column are painted background.
	assert.False(t, buf.BitAt(0, 0))
	assert.False(t, buf.BitAt(5, 3), "gap column")
	assert.True(t, buf.BitAt(2, 3))
}

func TestPutCharAdvancesCursor(t *testing.T) {
	r, buf := newRenderer(t)

	r.Puts("||")

	assert.True(t, buf.BitAt(2, 0), "first glyph")
	assert.True(t, buf.BitAt(8, 0), "second glyph, 6 columns later")
}

func TestCharWidth(t *testing.T) {
	r, _ := newRenderer(t)

	assert.Equal(t, 6, r.CharWidth('A'), "glyph width plus gap")
	assert.Equal(t, 0, r.CharWidth('\n'))
	assert.Equal(t, 18, r.StringWidth("abc"))
}

func TestNewlineAndWrap(t *testing.T) {
	r, buf := newRenderer(t)

	r.Puts("|\n|")
	assert.True(t, buf.BitAt(2, 0))
	assert.True(t, buf.BitAt(2, 8), "next line starts below glyph plus gap row")

	// 64 wide fits ten 6-column cells; the 11th wraps.
	r, buf = newRenderer(t)
	for i := 0; i < 11; i++ {
		r.PutChar('|')
	}
	assert.True(t, buf.BitAt(56, 0), "tenth glyph on first line")
	assert.True(t, buf.BitAt(2, 8), "eleventh glyph wrapped")
}

func TestCursorTo(t *testing.T) {
	r, buf := newRenderer(t)

	r.CursorTo(2, 1)
	r.PutChar('|')

	assert.True(t, buf.BitAt(14, 10), "cell (2,1) is pixel (12,8)")
}

func TestCursorToXY(t *testing.T) {
	r, buf := newRenderer(t)

	r.CursorToXY(10, 20)
	r.PutChar('|')

	assert.True(t, buf.BitAt(12, 20))
}

func TestUnencodedCharIsSkipped(t *testing.T) {
	r, buf := newRenderer(t)

	r.PutChar(0x01)
	r.PutChar('|')

	assert.True(t, buf.BitAt(2, 0), "cursor did not advance for the unencoded char")
}

func TestPrintf(t *testing.T) {
	r, buf := newRenderer(t)

	r.Printf("%d", 1)

	// '1' in the system font has its full height stroke at column 1.
	assert.True(t, buf.BitAt(1, 1))
}

func TestEraseTextLine(t *testing.T) {
	r, buf := newRenderer(t)
	for x := 0; x < 64; x++ {
		for y := 0; y < 7; y++ {
			buf.SetDot(x, y, glcd.Black)
		}
	}

	r.CursorToXY(20, 0)
	r.EraseTextLine(text.EraseToEOL)

	assert.True(t, buf.BitAt(19, 0), "left of cursor untouched")
	for x := 20; x < 64; x++ {
		for y := 0; y < 7; y++ {
			if buf.BitAt(x, y) {
				t.Fatalf("pixel (%d,%d) not erased", x, y)
			}
		}
	}

	r.EraseTextLine(text.EraseFromBOL)
	assert.False(t, buf.BitAt(0, 0))
	assert.False(t, buf.BitAt(19, 6))
}

func TestEraseFullLine(t *testing.T) {
	r, buf := newRenderer(t)
	for x := 0; x < 64; x++ {
		buf.SetDot(x, 3, glcd.Black)
		buf.SetDot(x, 7, glcd.Black)
	}

	r.EraseTextLine(text.EraseFullLine)

	for x := 0; x < 64; x++ {
		assert.False(t, buf.BitAt(x, 3))
		assert.True(t, buf.BitAt(x, 7), "row below the text line untouched")
	}
}
