package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

// keyMap is the physical layout of the 16-key hex pad on a modern keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keyMap = map[sdl.Scancode]byte{
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_Z: 0xA,
	sdl.SCANCODE_C: 0xB,
	sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_V: 0xF,
}

// Keypad tracks the hex pad state from SDL keyboard events and hands the
// machine a per-tick snapshot.
type Keypad struct {
	keys  [16]bool
	reset bool
	quit  bool
}

// PollPressedKeys returns the pad state for the current tick.
func (k *Keypad) PollPressedKeys() [16]bool {
	return k.keys
}

// ProcessEvents drains the SDL event queue, updating the pad state and the
// quit and reset requests.
func (k *Keypad) ProcessEvents() {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			k.quit = true
		case *sdl.KeyboardEvent:
			if key, ok := keyMap[ev.Keysym.Scancode]; ok {
				k.keys[key] = ev.Type == sdl.KEYDOWN
				continue
			}

			if ev.Type != sdl.KEYDOWN {
				continue
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				k.quit = true
			case sdl.SCANCODE_BACKSPACE:
				k.reset = true
			}
		}
	}
}

// QuitRequested reports whether the window was closed or escape pressed.
func (k *Keypad) QuitRequested() bool {
	return k.quit
}

// ResetRequested reports whether a machine reset was asked for, clearing the
// request.
func (k *Keypad) ResetRequested() bool {
	r := k.reset
	k.reset = false

	return r
}
