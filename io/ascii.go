package io

import (
	"io"
)

// Ascii is the ASCII output port. Each write to the port address emits the
// low 8 bits of the written value as one byte. A zero byte is emitted like
// any other; the ASCII port never suppresses.
type Ascii struct {
	Output io.Writer

	// Escape replaces an emitted newline with a literal "\n". The
	// emulator sets it while trace rows are being printed so program
	// output does not break the table.
	Escape bool
}

var _ Port = (*Ascii)(nil)

// Emit writes the low byte of value to the output stream.
func (port *Ascii) Emit(value uint16) {
	if port.Output == nil {
		return
	}

	ch := byte(value & 0x00ff)
	if port.Escape && ch == '\n' {
		port.Output.Write([]byte{'\\', 'n'})
		return
	}

	port.Output.Write([]byte{ch})
}
