package io

import (
	"io"
)

// Small is the SMALL-encoded output port. Each write emits up to two
// characters from the low 12 bits of the written value: bits 6-11 first,
// bits 0-5 second. A group holding the NONE sentinel is suppressed.
type Small struct {
	Output io.Writer
}

var _ Port = (*Small)(nil)

// Emit decodes and writes the two 6-bit groups of value.
func (port *Small) Emit(value uint16) {
	if port.Output == nil {
		return
	}

	for _, group := range [2]uint16{(value >> 6) & 0x3f, value & 0x3f} {
		ch, ok := DecodeSmall(group)
		if !ok {
			continue
		}
		port.Output.Write([]byte{ch})
	}
}
