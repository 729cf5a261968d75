package cpu

import (
	"encoding/binary"
	"iter"
)

// Statement is one assembled source line: its location, the words it was
// split into, and the machine word it produced. Lines that only define
// labels or equates generate no Statement.
type Statement struct {
	LineNo int      // Source line number.
	Addr   int      // Memory address of the generated word.
	Words  []string // Source words after equate expansion.
	Code   Word     // Generated machine word.
	Ref    string   // Unresolved label reference, linked after parse.
}

// Program is an assembled listing, words in address order from zero.
type Program struct {
	Statements []Statement
}

// Words iterates the program's address/word pairs.
func (prog *Program) Words() iter.Seq2[uint16, Word] {
	return func(yield func(addr uint16, w Word) bool) {
		for _, st := range prog.Statements {
			if !yield(uint16(st.Addr), st.Code) {
				return
			}
		}
	}
}

// Image returns the program as a big-endian memory image, padded with
// zero words through the last generated address.
func (prog *Program) Image() (image []byte) {
	size := 0
	for _, st := range prog.Statements {
		if st.Addr+1 > size {
			size = st.Addr + 1
		}
	}

	image = make([]byte, size*2)
	for addr, word := range prog.Words() {
		binary.BigEndian.PutUint16(image[int(addr)*2:], uint16(word))
	}

	return
}

// Load writes the program's words directly into machine memory, the same
// state LoadImage produces from Image().
func (prog *Program) Load(m *Machine) {
	clear(m.Memory[:])
	for addr, word := range prog.Words() {
		m.Memory.Write(addr, word)
	}
}

// Debug finds the statement that generated the word at addr, for trace
// and diagnostic output. Returns nil when no statement maps there.
func (prog *Program) Debug(addr uint16) (st *Statement) {
	for n := range prog.Statements {
		if prog.Statements[n].Addr == int(addr) {
			st = &prog.Statements[n]
			break
		}
	}

	return
}
