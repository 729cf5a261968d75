package cpu

import (
	"fmt"
)

// Word is a single 16-bit machine word. Bits 12-15 are the INST segment
// (the opcode view), bits 0-11 the DATA segment (the operand view). Both
// views are derived from the same storage; updating one view leaves the
// other view's bits untouched.
type Word uint16

const (
	INST_MASK = Word(0xf000) // Mask of the INST segment bits.
	DATA_MASK = Word(0x0fff) // Mask of the DATA segment bits.
)

// MakeWord packs an opcode and a 12-bit data value into a word.
func MakeWord(op Opcode, data uint16) Word {
	return (Word(op&0xf) << 12) | (Word(data) & DATA_MASK)
}

// Inst returns the 4-bit INST segment.
func (w Word) Inst() Opcode {
	return Opcode((w >> 12) & 0xf)
}

// Data returns the 12-bit DATA segment.
func (w Word) Data() uint16 {
	return uint16(w & DATA_MASK)
}

// WithData replaces the DATA segment, preserving the INST segment.
func (w Word) WithData(data uint16) Word {
	return (w & INST_MASK) | (Word(data) & DATA_MASK)
}

// WithInst replaces the INST segment, preserving the DATA segment.
func (w Word) WithInst(op Opcode) Word {
	return (Word(op&0xf) << 12) | (w & DATA_MASK)
}

// String returns the word in the i:ddd trace form, e.g. "b:048".
func (w Word) String() string {
	return fmt.Sprintf("%01x:%03x", uint16(w.Inst()), w.Data())
}
