package cpu

import (
	"fmt"
)

// Opcode is the 4-bit INST segment value of an instruction word. All 16
// values are defined behaviors: 0x1 and 0xC are reserved and always route
// through the fault vector, and PUSH/POP route there too when the machine
// has no hardware stack.
type Opcode uint16

const (
	OP_HALT    = Opcode(0x0) // HALT
	OP_UNDEF_1 = Opcode(0x1) // reserved
	OP_JUMP    = Opcode(0x2) // JUMP
	OP_JUMPZ   = Opcode(0x3) // JUMPZ
	OP_LOAD    = Opcode(0x4) // LOAD
	OP_STORE   = Opcode(0x5) // STORE
	OP_LSHFT   = Opcode(0x6) // LSHFT
	OP_RSHFT   = Opcode(0x7) // RSHFT
	OP_XOR     = Opcode(0x8) // XOR
	OP_AND     = Opcode(0x9) // AND
	OP_SFULL   = Opcode(0xA) // SFULL
	OP_ADD     = Opcode(0xB) // ADD
	OP_UNDEF_C = Opcode(0xC) // reserved
	OP_POP     = Opcode(0xD) // POP
	OP_PUSH    = Opcode(0xE) // PUSH
	OP_NOOP    = Opcode(0xF) // NOOP
)

// opcodeName maps opcodes to their assembly mnemonics. The reserved slots
// have no mnemonic.
var opcodeName = map[Opcode]string{
	OP_HALT:  "HALT",
	OP_JUMP:  "JUMP",
	OP_JUMPZ: "JUMPZ",
	OP_LOAD:  "LOAD",
	OP_STORE: "STORE",
	OP_LSHFT: "LSHFT",
	OP_RSHFT: "RSHFT",
	OP_XOR:   "XOR",
	OP_AND:   "AND",
	OP_SFULL: "SFULL",
	OP_ADD:   "ADD",
	OP_POP:   "POP",
	OP_PUSH:  "PUSH",
	OP_NOOP:  "NOOP",
}

// opcodeByName is the inverse of opcodeName, used by the assembler.
var opcodeByName = func() map[string]Opcode {
	byName := make(map[string]Opcode, len(opcodeName))
	for op, name := range opcodeName {
		byName[name] = op
	}
	return byName
}()

// Reserved returns true for the opcode slots with no defined behavior.
func (op Opcode) Reserved() bool {
	return op == OP_UNDEF_1 || op == OP_UNDEF_C
}

// String returns the assembly mnemonic, or the hex value for reserved slots.
func (op Opcode) String() string {
	name, ok := opcodeName[op]
	if !ok {
		name = fmt.Sprintf("0x%01X", uint16(op))
	}
	return name
}
