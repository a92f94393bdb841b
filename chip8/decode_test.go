package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestHexDigits(t *testing.T) {
	tests := []struct {
		word uint16
		d, o uint
		want uint16
	}{
		{word: 0xABCD, d: 4, o: 0, want: 0xABCD},
		{word: 0xABCD, d: 3, o: 0, want: 0xBCD},
		{word: 0xABCD, d: 2, o: 0, want: 0xCD},
		{word: 0xABCD, d: 1, o: 0, want: 0xD},
		{word: 0xABCD, d: 1, o: 1, want: 0xC},
		{word: 0xABCD, d: 1, o: 2, want: 0xB},
		{word: 0xABCD, d: 1, o: 3, want: 0xA},
		{word: 0xABCD, d: 2, o: 1, want: 0xBC},
		{word: 0x1E90, d: 3, o: 1, want: 0x1E9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, hexDigits(tt.word, tt.d, tt.o))
	}
}

func TestDecodeKinds(t *testing.T) {
	tests := []struct {
		word uint16
		want opKind
	}{
		{word: 0x00E0, want: opClearScreen},
		{word: 0x00EE, want: opReturn},
		{word: 0x1234, want: opJump},
		{word: 0x2345, want: opCall},
		{word: 0x3A7F, want: opSkipEqByte},
		{word: 0x4A7F, want: opSkipNeByte},
		{word: 0x5AB0, want: opSkipEqReg},
		{word: 0x6A7F, want: opLoadByte},
		{word: 0x7A7F, want: opAddByte},
		{word: 0x8AB0, want: opMove},
		{word: 0x8AB1, want: opOr},
		{word: 0x8AB2, want: opAnd},
		{word: 0x8AB3, want: opXor},
		{word: 0x8AB4, want: opAdd},
		{word: 0x8AB5, want: opSub},
		{word: 0x8AB6, want: opShiftRight},
		{word: 0x8AB7, want: opSubReverse},
		{word: 0x8ABE, want: opShiftLeft},
		{word: 0x9AB0, want: opSkipNeReg},
		{word: 0xA123, want: opLoadI},
		{word: 0xB123, want: opJumpV0},
		{word: 0xC47F, want: opRandom},
		{word: 0xDAB5, want: opDraw},
		{word: 0xE49E, want: opSkipKeyDown},
		{word: 0xE4A1, want: opSkipKeyUp},
		{word: 0xF407, want: opLoadDelay},
		{word: 0xF40A, want: opWaitKey},
		{word: 0xF415, want: opSetDelay},
		{word: 0xF418, want: opSetSound},
		{word: 0xF41E, want: opAddI},
		{word: 0xF429, want: opGlyph},
		{word: 0xF433, want: opBCD},
		{word: 0xF455, want: opSaveRegs},
		{word: 0xF465, want: opLoadRegs},

		// nothing matches: logged and skipped by the execution engine
		{word: 0x0000, want: opUnknown},
		{word: 0x0123, want: opUnknown},
		{word: 0x00FF, want: opUnknown},
		{word: 0x5AB1, want: opUnknown},
		{word: 0x8AB8, want: opUnknown},
		{word: 0x9AB9, want: opUnknown},
		{word: 0xE4FF, want: opUnknown},
		{word: 0xF400, want: opUnknown},
		{word: 0xF466, want: opUnknown},
	}

	for _, tt := range tests {
		in := decode(byte(tt.word>>8), byte(tt.word))
		assert.Equal(t, tt.want, in.kind)
	}
}

func TestDecodeOperands(t *testing.T) {
	in := decode(0xDA, 0xB5)

	assert.Equal(t, uint16(0xDAB5), in.word)
	assert.Equal(t, uint16(0xAB5), in.addr)
	assert.Equal(t, byte(0xA), in.x)
	assert.Equal(t, byte(0xB), in.y)
	assert.Equal(t, byte(0xB5), in.b)
	assert.Equal(t, byte(0x5), in.n)
}
