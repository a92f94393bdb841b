package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/emupack/chip-8/chip8"
)

// Screen owns the machine framebuffer and presents it through an SDL render
// target stretched into the window.
type Screen struct {
	chip8.Framebuffer

	renderer *sdl.Renderer
	target   *sdl.Texture
}

// NewScreen creates the render target for the machine display.
func NewScreen(renderer *sdl.Renderer) (*Screen, error) {
	target, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB888,
		sdl.TEXTUREACCESS_TARGET,
		chip8.DisplayWidth,
		chip8.DisplayHeight,
	)
	if err != nil {
		return nil, err
	}

	return &Screen{
		renderer: renderer,
		target:   target,
	}, nil
}

// Present redraws the framebuffer into the render target and shows the new
// frame.
func (s *Screen) Present() {
	if err := s.renderer.SetRenderTarget(s.target); err != nil {
		return
	}

	// unlit background
	s.renderer.SetDrawColor(0x81, 0xC7, 0x84, 0xFF)
	s.renderer.Clear()

	// lit pixels
	s.renderer.SetDrawColor(0x29, 0x30, 0x2A, 0xFF)

	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if s.Pixel(x, y) {
				s.renderer.FillRect(&sdl.Rect{X: int32(x), Y: int32(y), W: 1, H: 1})
			}
		}
	}

	// restore the render target and stretch it to fit the window
	s.renderer.SetRenderTarget(nil)
	s.renderer.Copy(s.target, nil, nil)

	s.renderer.Present()
}
