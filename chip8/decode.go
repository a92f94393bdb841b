package chip8

// opKind identifies one of the documented machine instructions. The zero
// value marks an unrecognized word, which execution logs and skips.
type opKind uint8

const (
	opUnknown opKind = iota
	opClearScreen
	opReturn
	opJump
	opCall
	opSkipEqByte
	opSkipNeByte
	opSkipEqReg
	opLoadByte
	opAddByte
	opMove
	opOr
	opAnd
	opXor
	opAdd
	opSub
	opShiftRight
	opSubReverse
	opShiftLeft
	opSkipNeReg
	opLoadI
	opJumpV0
	opRandom
	opDraw
	opSkipKeyDown
	opSkipKeyUp
	opLoadDelay
	opWaitKey
	opSetDelay
	opSetSound
	opAddI
	opGlyph
	opBCD
	opSaveRegs
	opLoadRegs
)

// instruction is a decoded 16-bit instruction word. Every operand field is
// extracted up front; each kind reads only the fields its encoding defines.
type instruction struct {
	kind opKind

	word uint16 // raw instruction word
	addr uint16 // 12-bit address operand
	x    byte   // first register operand
	y    byte   // second register operand
	b    byte   // byte immediate
	n    byte   // nibble immediate
}

// hexDigits extracts d hex digits from word after skipping o digits, counting
// from the least-significant end. Equivalent to (word / 16^o) mod 16^d.
func hexDigits(word uint16, d, o uint) uint16 {
	return word >> (4 * o) & uint16(1<<(4*d)-1)
}

// decode combines the high and low instruction bytes big-endian and maps the
// word onto the closed instruction enumeration. The high nibble selects the
// opcode family; the remaining nibbles select within it.
func decode(hi, lo byte) instruction {
	word := uint16(hi)<<8 | uint16(lo)

	in := instruction{
		word: word,
		addr: hexDigits(word, 3, 0),
		x:    byte(hexDigits(word, 1, 2)),
		y:    byte(hexDigits(word, 1, 1)),
		b:    byte(hexDigits(word, 2, 0)),
		n:    byte(hexDigits(word, 1, 0)),
	}

	switch hexDigits(word, 1, 3) {
	case 0x0:
		switch word {
		case 0x00E0:
			in.kind = opClearScreen
		case 0x00EE:
			in.kind = opReturn
		}
	case 0x1:
		in.kind = opJump
	case 0x2:
		in.kind = opCall
	case 0x3:
		in.kind = opSkipEqByte
	case 0x4:
		in.kind = opSkipNeByte
	case 0x5:
		if in.n == 0x0 {
			in.kind = opSkipEqReg
		}
	case 0x6:
		in.kind = opLoadByte
	case 0x7:
		in.kind = opAddByte
	case 0x8:
		switch in.n {
		case 0x0:
			in.kind = opMove
		case 0x1:
			in.kind = opOr
		case 0x2:
			in.kind = opAnd
		case 0x3:
			in.kind = opXor
		case 0x4:
			in.kind = opAdd
		case 0x5:
			in.kind = opSub
		case 0x6:
			in.kind = opShiftRight
		case 0x7:
			in.kind = opSubReverse
		case 0xE:
			in.kind = opShiftLeft
		}
	case 0x9:
		if in.n == 0x0 {
			in.kind = opSkipNeReg
		}
	case 0xA:
		in.kind = opLoadI
	case 0xB:
		in.kind = opJumpV0
	case 0xC:
		in.kind = opRandom
	case 0xD:
		in.kind = opDraw
	case 0xE:
		switch in.b {
		case 0x9E:
			in.kind = opSkipKeyDown
		case 0xA1:
			in.kind = opSkipKeyUp
		}
	case 0xF:
		switch in.b {
		case 0x07:
			in.kind = opLoadDelay
		case 0x0A:
			in.kind = opWaitKey
		case 0x15:
			in.kind = opSetDelay
		case 0x18:
			in.kind = opSetSound
		case 0x1E:
			in.kind = opAddI
		case 0x29:
			in.kind = opGlyph
		case 0x33:
			in.kind = opBCD
		case 0x55:
			in.kind = opSaveRegs
		case 0x65:
			in.kind = opLoadRegs
		}
	}

	return in
}
