package chip8

import (
	"fmt"
	"math/rand"

	"github.com/retroenv/retrogolib/log"
)

// Step fetches, decodes and executes the single instruction at PC. After
// execution PC advances by 2 unless the instruction set it itself; jumps,
// calls and returns suppress the advance. Unrecognized words are logged and
// skipped so the program keeps making forward progress.
func (vm *VM) Step() error {
	in := decode(vm.Memory[vm.PC], vm.Memory[vm.PC+1])

	advance := true

	switch in.kind {
	case opClearScreen:
		vm.display.Clear()
	case opReturn:
		if err := vm.ret(); err != nil {
			return err
		}
		advance = false
	case opJump:
		vm.PC = in.addr
		advance = false
	case opCall:
		if err := vm.call(in.addr); err != nil {
			return err
		}
		advance = false
	case opSkipEqByte:
		vm.skipIf(vm.V[in.x] == in.b)
	case opSkipNeByte:
		vm.skipIf(vm.V[in.x] != in.b)
	case opSkipEqReg:
		vm.skipIf(vm.V[in.x] == vm.V[in.y])
	case opLoadByte:
		vm.V[in.x] = in.b
	case opAddByte:
		// wraps, no flag
		vm.V[in.x] += in.b
	case opMove:
		vm.V[in.x] = vm.V[in.y]
	case opOr:
		vm.V[in.x] |= vm.V[in.y]
	case opAnd:
		vm.V[in.x] &= vm.V[in.y]
	case opXor:
		vm.V[in.x] ^= vm.V[in.y]
	case opAdd:
		vm.add(in.x, in.y)
	case opSub:
		vm.sub(in.x, in.y)
	case opShiftRight:
		vm.shiftRight(in.x)
	case opSubReverse:
		vm.subReverse(in.x, in.y)
	case opShiftLeft:
		vm.shiftLeft(in.x)
	case opSkipNeReg:
		vm.skipIf(vm.V[in.x] != vm.V[in.y])
	case opLoadI:
		vm.I = in.addr
	case opJumpV0:
		vm.PC = in.addr + uint16(vm.V[0x0])
		advance = false
	case opRandom:
		vm.V[in.x] = byte(rand.Int31()) & in.b
	case opDraw:
		vm.draw(in.x, in.y, in.n)
	case opSkipKeyDown:
		vm.skipIf(vm.keys[vm.V[in.x]&0xF])
	case opSkipKeyUp:
		vm.skipIf(!vm.keys[vm.V[in.x]&0xF])
	case opLoadDelay:
		vm.V[in.x] = vm.DT
	case opWaitKey:
		vm.mode = waitingForKey
		vm.waitReg = in.x
	case opSetDelay:
		vm.DT = vm.V[in.x]
	case opSetSound:
		vm.ST = vm.V[in.x]
	case opAddI:
		vm.I += uint16(vm.V[in.x])
	case opGlyph:
		vm.I = glyphStride * uint16(vm.V[in.x]&0xF)
	case opBCD:
		vm.storeBCD(in.x)
	case opSaveRegs:
		vm.saveRegs(in.x)
	case opLoadRegs:
		vm.loadRegs(in.x)
	case opUnknown:
		vm.logger.Warn("unrecognized instruction",
			log.String("opcode", fmt.Sprintf("%04X", in.word)),
			log.String("pc", fmt.Sprintf("%03X", vm.PC)))
	}

	if advance {
		vm.PC += 2
	}

	return nil
}

// skipIf advances PC over the next instruction when cond holds. The regular
// post-instruction advance still applies on top.
func (vm *VM) skipIf(cond bool) {
	if cond {
		vm.PC += 2
	}
}

// setFlag writes the VF flag register.
func (vm *VM) setFlag(cond bool) {
	if cond {
		vm.V[0xF] = 1
	} else {
		vm.V[0xF] = 0
	}
}

// call pushes the call-site PC and jumps. The stack fault is checked before
// any state changes.
func (vm *VM) call(addr uint16) error {
	if vm.SP == StackSize {
		return fmt.Errorf("%w: call to %03X", ErrStackOverflow, addr)
	}

	vm.Stack[vm.SP] = vm.PC
	vm.SP++
	vm.PC = addr

	return nil
}

// ret pops the call-site PC and resumes at the instruction after it.
func (vm *VM) ret() error {
	if vm.SP == 0 {
		return fmt.Errorf("%w: return at %03X", ErrStackUnderflow, vm.PC)
	}

	vm.SP--
	vm.PC = vm.Stack[vm.SP] + 2

	return nil
}

// add vy to vx wrapping; VF is 1 on overflow.
func (vm *VM) add(x, y byte) {
	sum := uint16(vm.V[x]) + uint16(vm.V[y])

	vm.V[x] = byte(sum)
	vm.setFlag(sum > 0xFF)
}

// sub vy from vx wrapping; VF is 0 on borrow, 1 otherwise.
func (vm *VM) sub(x, y byte) {
	borrow := vm.V[x] < vm.V[y]

	vm.V[x] -= vm.V[y]
	vm.setFlag(!borrow)
}

// subReverse stores vy - vx in vx wrapping; VF is 0 on borrow, 1 otherwise.
func (vm *VM) subReverse(x, y byte) {
	borrow := vm.V[y] < vm.V[x]

	vm.V[x] = vm.V[y] - vm.V[x]
	vm.setFlag(!borrow)
}

// shiftRight shifts vx right one bit, capturing the shifted-out bit in VF
// before vx is overwritten.
func (vm *VM) shiftRight(x byte) {
	old := vm.V[x]

	vm.setFlag(old&0x01 != 0)
	vm.V[x] = old >> 1
}

// shiftLeft shifts vx left one bit wrapping, capturing the shifted-out bit in
// VF before vx is overwritten.
func (vm *VM) shiftLeft(x byte) {
	old := vm.V[x]

	vm.setFlag(old&0x80 != 0)
	vm.V[x] = old << 1
}

// draw blits n sprite bytes at memory[I] to (vx, vy) and raises VF on
// collision. The sprite read is clamped at the end of memory.
func (vm *VM) draw(x, y, n byte) {
	start := int(vm.I)
	if start > MemorySize {
		start = MemorySize
	}

	end := start + int(n)
	if end > MemorySize {
		end = MemorySize
	}

	vm.setFlag(vm.display.Draw(vm.Memory[start:end], vm.V[x], vm.V[y]))
}

// storeBCD writes the decimal digits of vx to memory[I..I+2], hundreds
// first.
func (vm *VM) storeBCD(x byte) {
	v := vm.V[x]

	for j, d := range [3]byte{v / 100, v / 10 % 10, v % 10} {
		if a := int(vm.I) + j; a < MemorySize {
			vm.Memory[a] = d
		}
	}
}

// saveRegs stores v0..vx inclusive at memory[I..I+x].
func (vm *VM) saveRegs(x byte) {
	for j := 0; j <= int(x); j++ {
		a := int(vm.I) + j
		if a >= MemorySize {
			break
		}

		vm.Memory[a] = vm.V[j]
	}
}

// loadRegs loads v0..vx inclusive from memory[I..I+x].
func (vm *VM) loadRegs(x byte) {
	for j := 0; j <= int(x); j++ {
		a := int(vm.I) + j
		if a >= MemorySize {
			break
		}

		vm.V[j] = vm.Memory[a]
	}
}
