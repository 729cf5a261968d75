package cpu

import (
	"fmt"
	"log"

	"github.com/hwsim/sma16/io"
)

// Port is a memory-mapped output device.
type Port io.Port

// Machine is one SMA-16 processor instance: registers, flags, memory, the
// optional hardware stack, and the port map. Instances share nothing; any
// number can run independently in one process.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Memory Memory         // Flat word store.
	PC     ProgramCounter // 12-bit program counter.
	Acc    Accumulator    // 16-bit accumulator.
	Zero   bool           // Set by ADD when the DATA view becomes zero.
	Halt   bool           // Set by HALT; the run loop's sole exit.

	// Stack is the hardware stack, or nil on machines built without
	// one. With no stack, PUSH and POP route through the fault vector.
	Stack *Stack

	// ReservedNop treats the reserved opcodes 0x1 and 0xC as no-ops
	// instead of faulting. Off by default: software stack emulation
	// depends on reserved opcodes reaching the fault vector.
	ReservedNop bool

	Steps int // Instructions executed since reset.

	ports map[uint16]Port
}

// NewMachine creates a machine. A positive stackDepth attaches a hardware
// stack of that many words; zero builds the stackless variant, where PUSH
// and POP fault.
func NewMachine(stackDepth int) (m *Machine) {
	m = &Machine{}
	if stackDepth > 0 {
		m.Stack = NewStack(stackDepth)
	}

	return
}

// SetPort maps a write-triggered device at addr. A nil port unmaps.
func (m *Machine) SetPort(addr uint16, port Port) {
	if m.ports == nil {
		m.ports = make(map[uint16]Port, 2)
	}

	addr &= ADDR_MASK
	if port == nil {
		delete(m.ports, addr)
		return
	}
	m.ports[addr] = port
}

// Reset clears memory, registers, flags, step count, and the stack. The
// port map survives a reset.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("cpu: reset")
	}

	clear(m.Memory[:])
	m.PC.Set(RESET_VECTOR)
	m.Acc.Set(0)
	m.Zero = false
	m.Halt = false
	m.Steps = 0
	if m.Stack != nil {
		m.Stack.Reset()
	}
}

// String returns the current machine state.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("  acc: %v\n   pc: %03x\n zero: %v\n halt: %v\n",
		m.Acc.Get(), m.PC.Get(), m.Zero, m.Halt)

	if m.Stack != nil {
		top, ok := m.Stack.Peek()
		if ok {
			text += fmt.Sprintf("stack: %04x (%d deep)\n", uint16(top), len(m.Stack.Data))
		} else {
			text += "stack: ---- (empty)\n"
		}
	}

	return
}

// Step executes one fetch-decode-execute cycle. It is total: every 16-bit
// word has a defined behavior, either direct execution or fault routing, so
// stepping never fails regardless of memory contents.
func (m *Machine) Step() {
	w := m.Memory.Read(m.PC.Get())
	data := w.Data()

	if m.Verbose {
		log.Printf("cpu: %03x: %v %#03x", m.PC.Get(), w.Inst(), data)
	}

	switch w.Inst() {
	case OP_HALT:
		m.Halt = true
		m.PC.Advance(1)
	case OP_UNDEF_1:
		m.reserved(OP_UNDEF_1)
	case OP_JUMP:
		m.PC.Set(data)
	case OP_JUMPZ:
		if m.Zero {
			m.PC.Set(data)
		} else {
			m.PC.Advance(1)
		}
	case OP_LOAD:
		m.Acc.Set(m.Memory.Read(data))
		m.PC.Advance(1)
	case OP_STORE:
		m.store(data, false)
		m.PC.Advance(1)
	case OP_LSHFT:
		m.shift(data, true)
		m.PC.Advance(1)
	case OP_RSHFT:
		m.shift(data, false)
		m.PC.Advance(1)
	case OP_XOR:
		m.Acc.SetData(m.Acc.Data() ^ data)
		m.PC.Advance(1)
	case OP_AND:
		m.Acc.SetData(m.Acc.Data() & data)
		m.PC.Advance(1)
	case OP_SFULL:
		m.store(data, true)
		m.PC.Advance(1)
	case OP_ADD:
		sum := (m.Acc.Data() + data) & ADDR_MASK
		m.Acc.SetData(sum)
		m.Zero = sum == 0
		m.PC.Advance(1)
	case OP_UNDEF_C:
		m.reserved(OP_UNDEF_C)
	case OP_POP:
		if m.Stack == nil {
			m.fault(OP_POP)
		} else {
			m.Acc.Set(m.Stack.Pop())
			m.PC.Advance(1)
		}
	case OP_PUSH:
		if m.Stack == nil {
			m.fault(OP_PUSH)
		} else {
			m.Stack.Push(m.Acc.Get())
			m.PC.Advance(1)
		}
	case OP_NOOP:
		m.PC.Advance(1)
	}

	m.Steps++
}

// Run steps until the halt flag is set. Callers needing a step budget or
// a cooperative stop belong a layer up, in the emulator harness.
func (m *Machine) Run() {
	for !m.Halt {
		m.Step()
	}
}

// store writes the accumulator to addr and triggers any port mapped there.
// STORE preserves the destination's INST segment, SFULL replaces the whole
// word; the port sees the full accumulator either way.
func (m *Machine) store(addr uint16, full bool) {
	addr &= ADDR_MASK
	if full {
		m.Memory.Write(addr, m.Acc.Get())
	} else {
		m.Memory.WriteData(addr, m.Acc.Data())
	}

	port, ok := m.ports[addr]
	if ok {
		port.Emit(uint16(m.Acc.Get()))
	}
}

// shift applies LSHFT/RSHFT. Bit 0 of the operand selects the target: set
// means only the DATA view shifts, with INST preserved; clear shifts the
// full word. The remaining bits are the shift amount, so shifting by the
// segment width or more yields zero.
func (m *Machine) shift(operand uint16, left bool) {
	amount := operand >> 1

	if operand&0x1 != 0 {
		data := m.Acc.Data()
		if left {
			data = (data << amount) & ADDR_MASK
		} else {
			data >>= amount
		}
		m.Acc.SetData(data)
		return
	}

	full := uint16(m.Acc.Get())
	if left {
		full <<= amount
	} else {
		full >>= amount
	}
	m.Acc.Set(Word(full))
}

// reserved handles the opcode slots with no behavior: fault by default,
// or fall through as a no-op on machines configured that way.
func (m *Machine) reserved(op Opcode) {
	if m.ReservedNop {
		m.PC.Advance(1)
		return
	}

	m.fault(op)
}

// fault redirects execution to the fault vector, recording the return
// address and the reason first. This is the only path besides JUMP/JUMPZ
// that moves the program counter away from the next word.
func (m *Machine) fault(op Opcode) {
	if m.Verbose {
		log.Printf("cpu: fault %v at %03x", op, m.PC.Get())
	}

	m.Memory.Write(INTERRUPT_RETURN, Word((m.PC.Get()+1)&ADDR_MASK))
	m.Memory.Write(INTERRUPT_REASON, Word(IR_UNSUPPORTED|uint16(op&0xf)))
	m.PC.Set(FAULT_VECTOR)
}
