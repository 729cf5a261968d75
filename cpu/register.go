package cpu

// ProgramCounter holds the 12-bit address of the next word to fetch. Every
// update masks to 12 bits; the counter wraps silently, there is no overflow
// condition.
type ProgramCounter uint16

// Get returns the current address.
func (pc *ProgramCounter) Get() uint16 {
	return uint16(*pc) & ADDR_MASK
}

// Set replaces the address, masked to 12 bits.
func (pc *ProgramCounter) Set(addr uint16) {
	*pc = ProgramCounter(addr & ADDR_MASK)
}

// Advance adds n to the address, masked to 12 bits.
func (pc *ProgramCounter) Advance(n uint16) {
	pc.Set(uint16(*pc) + n)
}

// Accumulator is the 16-bit general-purpose register. Its DATA and INST
// views split the same way a memory word does.
type Accumulator Word

// Get returns the full accumulator word.
func (acc *Accumulator) Get() Word {
	return Word(*acc)
}

// Set replaces the full accumulator word.
func (acc *Accumulator) Set(w Word) {
	*acc = Accumulator(w)
}

// Data returns the accumulator's DATA segment.
func (acc *Accumulator) Data() uint16 {
	return Word(*acc).Data()
}

// SetData replaces the accumulator's DATA segment, preserving INST.
func (acc *Accumulator) SetData(data uint16) {
	*acc = Accumulator(Word(*acc).WithData(data))
}
