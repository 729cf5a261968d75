// Package cpu implements the SMA-16 processor and its assembler.
//
// The machine is a 16-bit instruction-word, 12-bit-address architecture:
// every word splits into a 4-bit INST segment (bits 12-15) and a 12-bit DATA
// segment (bits 0-11). The processor consists of a 12-bit program counter, a
// 16-bit accumulator, zero and halt flags, 4096 words of flat memory, and an
// optional bounded hardware stack. Unimplemented opcodes are routed through
// the fault vector, which is also how PUSH/POP behave on machines built
// without the hardware stack.
//
// The assembler provides the line-oriented SMA-16 assembly language with
// labels, equates, packed character literals, and compile-time expression
// evaluation.
package cpu
