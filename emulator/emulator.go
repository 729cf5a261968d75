// Package emulator hosts a machine behind the harness concerns the core
// deliberately omits: the cooperative stop flag, an optional step budget,
// per-step debug trace rows, and source-line mapping for assembled
// programs.
package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"sync/atomic"

	"github.com/hwsim/sma16/cpu"
	"github.com/hwsim/sma16/internal"
	sink "github.com/hwsim/sma16/io"
)

var _emulator_defines = map[string]string{
	"STACK_LIMIT": fmt.Sprintf("%v", cpu.STACK_LIMIT),
}

// Emulator state. Machine + output ports + run controls.
type Emulator struct {
	Verbose bool // If set, prints a trace row for every step.

	*cpu.Machine              // The machine instance being hosted.
	Program      *cpu.Program // Assembled listing, when one exists.

	Ascii sink.Ascii // ASCII output port, mapped at ASCII_OUT.
	Small sink.Small // SMALL output port, mapped at SMALL_OUT.

	Trace io.Writer // Trace row destination; nil disables tracing.

	// MaxSteps bounds one Run call; zero means unbounded. The core
	// run loop has no budget of its own.
	MaxSteps int

	stop atomic.Bool
}

// NewEmulator creates an emulator hosting a machine with the given stack
// depth (zero builds the stackless variant) and maps both output ports.
func NewEmulator(stackDepth int) (emu *Emulator) {
	emu = &Emulator{
		Machine: cpu.NewMachine(stackDepth),
	}

	emu.Machine.SetPort(cpu.ASCII_OUT, &emu.Ascii)
	emu.Machine.SetPort(cpu.SMALL_OUT, &emu.Small)

	return
}

// Defines returns an iterator over all of the defines the assembler
// should predefine as equates.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		cpu.Defines(),
	)
}

// Reset resets the machine and clears a pending stop request. When an
// assembled program is attached, its words are loaded after the reset.
func (emu *Emulator) Reset() {
	emu.Machine.Reset()
	emu.stop.Store(false)

	if emu.Program != nil {
		emu.Program.Load(emu.Machine)
	}
}

// Stop requests a cooperative stop. It is safe from any goroutine, such
// as a signal handler; the run loop honors it at the next instruction
// boundary, never splitting an instruction's effects.
func (emu *Emulator) Stop() {
	emu.stop.Store(true)
}

// Stopped reports whether a stop was requested.
func (emu *Emulator) Stopped() bool {
	return emu.stop.Load()
}

// Resume clears the halt flag and any pending stop request so Run can
// continue past a halt, the interactive "continue" path.
func (emu *Emulator) Resume() {
	emu.Machine.Halt = false
	emu.stop.Store(false)
}

// LineNo returns the source line of the next instruction, when the
// attached program maps it. Zero means unmapped.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	st := emu.Program.Debug(emu.Machine.PC.Get())
	if st == nil {
		return 0
	}

	return st.LineNo
}

// Tick executes one instruction. Done becomes true on halt, on a pending
// stop request, or when the step budget is exhausted.
func (emu *Emulator) Tick() (done bool) {
	tracing := emu.Verbose && emu.Trace != nil

	// While the trace table is printing, ASCII newlines are escaped so
	// program output cannot break the rows.
	emu.Ascii.Escape = tracing

	if tracing {
		emu.traceRow()
	}

	emu.Machine.Step()

	if tracing {
		if emu.Machine.Halt {
			fmt.Fprint(emu.Trace, "HALT")
		}
		fmt.Fprintln(emu.Trace)
	}

	done = emu.Machine.Halt ||
		emu.stop.Load() ||
		(emu.MaxSteps > 0 && emu.Machine.Steps >= emu.MaxSteps)
	return
}

// Run ticks until done, and reports whether the machine actually halted,
// as opposed to being stopped or running out of budget.
func (emu *Emulator) Run() (halted bool) {
	for !emu.Tick() {
	}

	return emu.Machine.Halt
}

// TraceHeader prints the column header for the trace table.
func (emu *Emulator) TraceHeader() {
	if emu.Trace == nil {
		return
	}

	fmt.Fprintln(emu.Trace, "+---------+-----+-------+--- -- -- - - -")
	fmt.Fprintln(emu.Trace, "| [ ACC ] | PC  | PROG  | -> OUTPUT")
	fmt.Fprintln(emu.Trace, "+---------+-----+-------+--- -- -- - - -")
}

// TraceFooter closes the trace table.
func (emu *Emulator) TraceFooter() {
	if emu.Trace == nil {
		return
	}

	fmt.Fprintln(emu.Trace, "+---------+-----+-------+--- -- -- - - -")
}

// traceRow prints the pre-execution state of the next instruction. Any
// port output the instruction produces lands after the arrow.
func (emu *Emulator) traceRow() {
	m := emu.Machine
	pc := m.PC.Get()
	fmt.Fprintf(emu.Trace, "| [%v] | %03x | %v | -> ",
		m.Acc.Get(), pc, m.Memory.Read(pc))
}
