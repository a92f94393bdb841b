package chip8

import "math/bits"

// Display resolution in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Framebuffer is the 64x32 monochrome display surface. Each scan line is one
// uint64 with the leftmost pixel in the most significant bit, so an 8-pixel
// sprite row is a single rotate and xor.
type Framebuffer struct {
	rows [DisplayHeight]uint64
}

// Clear turns every pixel off.
func (fb *Framebuffer) Clear() {
	fb.rows = [DisplayHeight]uint64{}
}

// Draw xor-blits an 8-pixel-wide sprite at (x, y), wrapping on both axes.
// It reports whether any lit pixel was erased.
func (fb *Framebuffer) Draw(sprite []byte, x, y byte) bool {
	collision := false

	for k, b := range sprite {
		row := (int(y) + k) % DisplayHeight

		// rotate the sprite byte into columns x..x+7, wrapping at the
		// right edge
		line := bits.RotateLeft64(uint64(b)<<56, -(int(x) % DisplayWidth))

		// a lit pixel under a lit sprite bit is erased by the xor
		if fb.rows[row]&line != 0 {
			collision = true
		}

		fb.rows[row] ^= line
	}

	return collision
}

// Pixel reports whether the pixel at (x, y) is lit.
func (fb *Framebuffer) Pixel(x, y int) bool {
	return fb.rows[y]>>(DisplayWidth-1-x)&1 == 1
}
