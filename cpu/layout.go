package cpu

import (
	"fmt"
	"iter"
	"maps"
)

// Memory geometry.
const (
	ADDR_BITS   = 12            // Width of an address.
	ADDR_MASK   = uint16(0xfff) // Mask of the address bits.
	MEMORY_SIZE = 4096          // Words of addressable memory.
)

// Well-known addresses. Vectors are jump targets the machine redirects to;
// registers are ordinary memory cells with an agreed meaning.
const (
	RESET_VECTOR    = uint16(0x000) // Execution begins here.
	FAULT_VECTOR    = uint16(0x001) // Unimplemented opcode redirect.
	SOFTWARE_VECTOR = uint16(0x002) // Software interrupt entry.

	INTERRUPT_REASON = uint16(0x008) // Why the fault vector was taken.
	INTERRUPT_RETURN = uint16(0x009) // Address after the faulting word.
	ASCII_OUT        = uint16(0x00A) // ASCII output port.
	SMALL_OUT        = uint16(0x00B) // SMALL-encoded output port.
	TERM_CONF        = uint16(0x00C) // Terminal configuration register.
	STACK_SIZE       = uint16(0x00D) // Hardware stack depth register.
)

// IR_UNSUPPORTED is or-ed with the faulting opcode to form the value
// written to INTERRUPT_REASON.
const IR_UNSUPPORTED = uint16(0x0ff0)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":      fmt.Sprintf("%v", MEMORY_SIZE),
	"RESET_VECTOR":     fmt.Sprintf("%#x", RESET_VECTOR),
	"FAULT_VECTOR":     fmt.Sprintf("%#x", FAULT_VECTOR),
	"SOFTWARE_VECTOR":  fmt.Sprintf("%#x", SOFTWARE_VECTOR),
	"INTERRUPT_REASON": fmt.Sprintf("%#x", INTERRUPT_REASON),
	"INTERRUPT_RETURN": fmt.Sprintf("%#x", INTERRUPT_RETURN),
	"ASCII_OUT":        fmt.Sprintf("%#x", ASCII_OUT),
	"SMALL_OUT":        fmt.Sprintf("%#x", SMALL_OUT),
	"TERM_CONF":        fmt.Sprintf("%#x", TERM_CONF),
	"STACK_SIZE":       fmt.Sprintf("%#x", STACK_SIZE),
}

// Defines returns the well-known address map, in the form the assembler
// accepts as predefined equates.
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}
