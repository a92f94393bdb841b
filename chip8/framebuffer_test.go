package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFramebufferDraw(t *testing.T) {
	fb := &Framebuffer{}

	collision := fb.Draw([]byte{0b1010_0001}, 4, 10)
	assert.False(t, collision)

	assert.True(t, fb.Pixel(4, 10))
	assert.False(t, fb.Pixel(5, 10))
	assert.True(t, fb.Pixel(6, 10))
	assert.True(t, fb.Pixel(11, 10))
	assert.False(t, fb.Pixel(4, 11))
}

func TestFramebufferWrapAround(t *testing.T) {
	fb := &Framebuffer{}

	// all 8 pixels lit, 4 columns off the right edge and on the last row
	fb.Draw([]byte{0xFF, 0xFF}, 60, 31)

	for _, x := range []int{60, 61, 62, 63, 0, 1, 2, 3} {
		assert.True(t, fb.Pixel(x, 31))
		assert.True(t, fb.Pixel(x, 0))
	}
	assert.False(t, fb.Pixel(4, 31))
	assert.False(t, fb.Pixel(59, 0))
}

func TestFramebufferCoordinatesWrapModulo(t *testing.T) {
	fb := &Framebuffer{}

	// x and y beyond the resolution wrap like x%64, y%32
	fb.Draw([]byte{0x80}, 70, 40)

	assert.True(t, fb.Pixel(6, 8))
}

func TestFramebufferDoubleXORRestores(t *testing.T) {
	fb := &Framebuffer{}

	// background pattern
	fb.Draw([]byte{0x3C, 0x42, 0x42, 0x3C}, 8, 4)
	before := fb.rows

	sprite := []byte{0xF0, 0x90, 0xF0}

	fb.Draw(sprite, 10, 5)

	// collision of the second draw: any sprite bit over a lit pixel
	want := false
	for k, b := range sprite {
		for j := 0; j < 8; j++ {
			if b&(0x80>>j) != 0 && fb.Pixel((10+j)%DisplayWidth, (5+k)%DisplayHeight) {
				want = true
			}
		}
	}

	collision := fb.Draw(sprite, 10, 5)
	assert.Equal(t, want, collision)

	// the second draw restored the previous state exactly
	assert.Equal(t, before, fb.rows)
}

func TestFramebufferClear(t *testing.T) {
	fb := &Framebuffer{}

	fb.Draw([]byte{0xFF}, 0, 0)
	fb.Clear()

	for x := 0; x < DisplayWidth; x++ {
		assert.False(t, fb.Pixel(x, 0))
	}
}
