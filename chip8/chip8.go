// Package chip8 implements a CHIP-8 virtual machine: 4K of memory, sixteen
// 8-bit registers, a 16-entry call stack, two 60 Hz countdown timers and the
// 35 documented instructions. Display, keypad and tone generation are
// external collaborators wired in at construction.
package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Memory geometry and machine limits.
const (
	// MemorySize is the number of addressable bytes.
	MemorySize = 0x1000

	// ProgramStart is the address programs are loaded at. Everything
	// below it is reserved for the glyph table.
	ProgramStart = 0x200

	// StackSize is the call stack capacity.
	StackSize = 16

	// glyphStride is the distance between consecutive glyph table
	// entries; digit d lives at glyphStride*d.
	glyphStride = 0x10

	// ticksPerFrame is the number of machine ticks between timer
	// decrements and frame presentation, approximating 60 Hz against the
	// faster instruction rate.
	ticksPerFrame = 8
)

// glyphs is the 4x5 bitmap font for the hex digits 0-F, preloaded into the
// reserved memory area at reset.
var glyphs = [16][5]byte{
	{0xF0, 0x90, 0x90, 0x90, 0xF0}, // 0
	{0x20, 0x60, 0x20, 0x20, 0x70}, // 1
	{0xF0, 0x10, 0xF0, 0x80, 0xF0}, // 2
	{0xF0, 0x10, 0xF0, 0x10, 0xF0}, // 3
	{0x90, 0x90, 0xF0, 0x10, 0x10}, // 4
	{0xF0, 0x80, 0xF0, 0x10, 0xF0}, // 5
	{0xF0, 0x80, 0xF0, 0x90, 0xF0}, // 6
	{0xF0, 0x10, 0x20, 0x40, 0x40}, // 7
	{0xF0, 0x90, 0xF0, 0x90, 0xF0}, // 8
	{0xF0, 0x90, 0xF0, 0x10, 0xF0}, // 9
	{0xF0, 0x90, 0xF0, 0x90, 0x90}, // A
	{0xE0, 0x90, 0xE0, 0x90, 0xE0}, // B
	{0xF0, 0x80, 0x80, 0x80, 0xF0}, // C
	{0xE0, 0x90, 0x90, 0x90, 0xE0}, // D
	{0xF0, 0x80, 0xF0, 0x80, 0xF0}, // E
	{0xF0, 0x80, 0xF0, 0x80, 0x80}, // F
}

// Display is the surface the machine draws on. Draw xor-blits an 8-pixel-wide
// sprite at wrap-around coordinates and reports whether any lit pixel was
// erased. Present pushes the surface to the user, once per 60 Hz frame.
type Display interface {
	Clear()
	Draw(sprite []byte, x, y byte) bool
	Present()
}

// Input supplies a snapshot of the 16-key hex pad for the current tick.
type Input interface {
	PollPressedKeys() [16]bool
}

// Audio is a continuous tone source gated by the sound timer.
type Audio interface {
	StartTone()
	StopTone()
}

// mode of instruction dispatch.
type mode uint8

const (
	running mode = iota
	waitingForKey
)

// VM is a CHIP-8 virtual machine. It is the sole owner of all machine state;
// collaborators only receive draw and tone commands and supply key snapshots.
// Not safe for concurrent use.
type VM struct {
	// Memory addressable by the machine. The first 512 bytes hold the
	// glyph table; programs start at 0x200.
	Memory [MemorySize]byte

	// V are the 16 virtual registers. VF doubles as the carry, borrow,
	// shift and collision flag; the instructions that define it clobber
	// any prior value.
	V [16]byte

	// I is the address register.
	I uint16

	// PC is the program counter.
	PC uint16

	// Stack holds the return address of each active call. SP is the
	// number of entries in use.
	Stack [StackSize]uint16
	SP    int

	// DT and ST are the delay and sound timers, decremented once per
	// frame while nonzero. A nonzero ST keeps the tone playing.
	DT byte
	ST byte

	// mode suspends instruction dispatch while waiting for a keypress;
	// waitReg is the register the key value lands in.
	mode    mode
	waitReg byte

	// key snapshots for the current and previous tick, for edge
	// detection.
	keys     [16]bool
	prevKeys [16]bool

	// ticks executed since reset.
	ticks uint64

	// rom is the loaded program, kept so Reset can restore memory.
	rom []byte

	display Display
	input   Input
	audio   Audio
	logger  *log.Logger
}

// New creates a machine wired to its collaborators, with the glyph table
// preloaded and the program counter at the program start address.
func New(logger *log.Logger, display Display, input Input, audio Audio) *VM {
	vm := &VM{
		logger:  logger,
		display: display,
		input:   input,
		audio:   audio,
	}

	vm.Reset()

	return vm
}

// LoadROM copies a program into memory at the program start address and
// resets the machine. It fails with ErrROMTooLarge if the program does not
// fit.
func (vm *VM) LoadROM(rom []byte) error {
	if ProgramStart+len(rom) >= MemorySize {
		return fmt.Errorf("%w: %d bytes", ErrROMTooLarge, len(rom))
	}

	vm.rom = append(vm.rom[:0], rom...)
	vm.Reset()

	return nil
}

// Reset restores the machine to its power-on state with the loaded program
// intact.
func (vm *VM) Reset() {
	vm.Memory = [MemorySize]byte{}

	// preload the glyph table, digit d at glyphStride*d
	for d, g := range glyphs {
		copy(vm.Memory[glyphStride*d:], g[:])
	}

	copy(vm.Memory[ProgramStart:], vm.rom)

	vm.V = [16]byte{}
	vm.I = 0
	vm.PC = ProgramStart
	vm.Stack = [StackSize]uint16{}
	vm.SP = 0
	vm.DT = 0
	vm.ST = 0

	vm.mode = running
	vm.waitReg = 0
	vm.keys = [16]bool{}
	vm.prevKeys = [16]bool{}
	vm.ticks = 0

	vm.display.Clear()
}

// Halted reports whether the program counter has left addressable memory,
// which ends the run cleanly.
func (vm *VM) Halted() bool {
	return int(vm.PC)+1 >= MemorySize
}

// Tick runs one iteration of the machine loop: poll the keypad, execute at
// most one instruction, and on every 8th tick advance the timers, gate the
// tone and present the frame. Stack faults are returned as is and leave the
// machine state untouched.
func (vm *VM) Tick() error {
	vm.pollKeys()

	var err error
	if vm.mode == running && !vm.Halted() {
		err = vm.Step()
	}

	vm.ticks++
	if vm.ticks%ticksPerFrame == 0 {
		vm.frame()
	}

	return err
}

// pollKeys takes the keypad snapshot for this tick and, while waiting for a
// key, resumes execution on the first key-down edge. The lowest key index
// wins when several keys go down in the same tick.
func (vm *VM) pollKeys() {
	vm.prevKeys = vm.keys
	vm.keys = vm.input.PollPressedKeys()

	if vm.mode != waitingForKey {
		return
	}

	for k := 0; k < len(vm.keys); k++ {
		if vm.keys[k] && !vm.prevKeys[k] {
			vm.V[vm.waitReg] = byte(k)
			vm.mode = running
			break
		}
	}
}

// frame advances the 60 Hz side of the machine: countdown timers, the tone
// gate and frame presentation.
func (vm *VM) frame() {
	if vm.DT > 0 {
		vm.DT--
	}

	if vm.ST > 0 {
		vm.ST--
		vm.audio.StartTone()
	} else {
		vm.audio.StopTone()
	}

	vm.display.Present()
}
