package cpu

// Memory is the flat word-addressable store, zero-initialized at creation.
// Addresses are masked to 12 bits before indexing, matching the hardware
// variant's silent wrap; the decoder masks every address it computes, so a
// wide address reaching Memory is already in range. Programs routinely
// treat any cell as both instruction and data, so nothing here caches a
// decoded view.
type Memory [MEMORY_SIZE]Word

// Read returns the word at addr.
func (mem *Memory) Read(addr uint16) Word {
	return mem[addr&ADDR_MASK]
}

// Write replaces the word at addr, both segments.
func (mem *Memory) Write(addr uint16, w Word) {
	mem[addr&ADDR_MASK] = w
}

// ReadData returns the DATA segment of the word at addr.
func (mem *Memory) ReadData(addr uint16) uint16 {
	return mem.Read(addr).Data()
}

// WriteData replaces the DATA segment of the word at addr, preserving the
// INST segment already stored there.
func (mem *Memory) WriteData(addr uint16, data uint16) {
	mem[addr&ADDR_MASK] = mem[addr&ADDR_MASK].WithData(data)
}

// ReadInst returns the INST segment of the word at addr.
func (mem *Memory) ReadInst(addr uint16) Opcode {
	return mem.Read(addr).Inst()
}

// WriteInst replaces the INST segment of the word at addr, preserving the
// DATA segment already stored there.
func (mem *Memory) WriteInst(addr uint16, op Opcode) {
	mem[addr&ADDR_MASK] = mem[addr&ADDR_MASK].WithInst(op)
}
