// Package io provides the memory-mapped output ports of the SMA-16 machine.
// Ports are write-triggered character sinks: the machine invokes Emit once
// per store that targets a port address, synchronously and in program order.
package io

// Port is a memory-mapped write-triggered device.
type Port interface {
	// Emit is called with the full 16-bit value written to the port
	// address. Each port decides which bits it consumes.
	Emit(value uint16)
}
