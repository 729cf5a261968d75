package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseStrings(t *testing.T, program ...string) *Program {
	t.Helper()

	asm := &Assembler{}
	for attr, val := range Defines() {
		asm.Predefine(attr, val)
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	require.NoError(t, err)

	return prog
}

func TestAssembler_Empty(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Statements))
	assert.Equal("0", asm.Equate["LINENO"])
}

func TestAssembler_Instructions(t *testing.T) {
	assert := assert.New(t)

	prog := parseStrings(t,
		"# a comment line",
		"ADD 0x048",
		"add 73      # mnemonics are case-insensitive",
		"JUMP 0b101",
		"HALT",
	)

	var words []Word
	for _, word := range prog.Words() {
		words = append(words, word)
	}

	assert.Equal([]Word{0xb048, 0xb049, 0x2005, 0x0000}, words)
}

func TestAssembler_Labels(t *testing.T) {
	assert := assert.New(t)

	prog := parseStrings(t,
		"start: NOOP",
		"JUMP @end",
		"loop: JUMPZ @loop",
		"JUMP @start",
		"end: HALT",
	)

	assert.Equal([]Word{
		MakeWord(OP_NOOP, 0),
		MakeWord(OP_JUMP, 4),
		MakeWord(OP_JUMPZ, 2),
		MakeWord(OP_JUMP, 0),
		MakeWord(OP_HALT, 0),
	}, func() (words []Word) {
		for _, word := range prog.Words() {
			words = append(words, word)
		}
		return
	}())
}

func TestAssembler_Equates(t *testing.T) {
	assert := assert.New(t)

	prog := parseStrings(t,
		".equ COUNT 0x010",
		"ADD COUNT",
		"STORE ASCII_OUT",  // predefined by the machine layout
		"SFULL SMALL_OUT",  //
		".word $(COUNT * 2)",
	)

	expected := []Word{
		MakeWord(OP_ADD, 0x010),
		MakeWord(OP_STORE, ASCII_OUT),
		MakeWord(OP_SFULL, SMALL_OUT),
		Word(0x020),
	}

	var words []Word
	for _, word := range prog.Words() {
		words = append(words, word)
	}
	assert.Equal(expected, words)
}

func TestAssembler_CharacterLiterals(t *testing.T) {
	assert := assert.New(t)

	prog := parseStrings(t,
		`.word s"HI"`,
		`.word a"AB"`,
		`.word s'c'`,
		`.word a'A'`,
		`.word ?`,
	)

	var words []Word
	for _, word := range prog.Words() {
		words = append(words, word)
	}

	assert.Equal([]Word{
		(7 << 6) | 8,   // H=7, I=8 packed six bits each
		0x4241,         // 'B' high byte, 'A' low byte
		(63 << 6) | 28, // NONE pad, then c=28
		0x0041,
		0x0000,
	}, words)
}

func TestAssembler_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program string
		want    error
	}){
		{"bad_opcode", "FROB 0x123", ErrOpcodeInvalid},
		{"bad_number", "ADD nonsense", ErrParseNumber("nonsense")},
		{"dup_label", "x: NOOP\nx: NOOP", ErrLabelDuplicate},
		{"dup_equate", ".equ A 1\n.equ A 2", ErrEquateDuplicate},
		{"equ_syntax", ".equ A", ErrEquateSyntax},
		{"missing_label", "JUMP @nowhere", ErrLabelMissing("nowhere")},
		{"data_range", "ADD 0x1000", ErrDataRange(0x1000)},
		{"bad_directive", ".frob 1", ErrDirectiveSyntax},
		{"bad_small", `.word s"!!"`, ErrParseCharacter("!")},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(entry.program))
		assert.Error(err, entry.name)
		assert.ErrorIs(err, entry.want, entry.name)

		var syntax *ErrSyntax
		assert.ErrorAs(err, &syntax, entry.name)
	}
}

// Assembling a program holding every mnemonic once and single-stepping
// it visits each opcode's behavior exactly once, with no fault taken.
func TestAssembler_EveryOpcode(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	prog := parseStrings(t,
		"start: NOOP",
		"LOAD @value",
		"PUSH",
		"XOR 0xfff",
		"POP",
		"AND 0x0ff",
		"ADD 0xfdd      # 0x023 + 0xfdd wraps to zero",
		"JUMPZ @next",
		"NOOP           # skipped by the taken branch",
		"next: LSHFT 0x004",
		"RSHFT 0x004",
		"STORE @scratch",
		"SFULL @scratch",
		"JUMP @end",
		"scratch: .word ?",
		"end: HALT",
		"value: .word 0x123",
	)

	m := NewMachine(16)
	prog.Load(m)

	expected := []Opcode{
		OP_NOOP, OP_LOAD, OP_PUSH, OP_XOR, OP_POP, OP_AND, OP_ADD,
		OP_JUMPZ, OP_LSHFT, OP_RSHFT, OP_STORE, OP_SFULL, OP_JUMP,
		OP_HALT,
	}

	var visited []Opcode
	for !m.Halt {
		require.Less(len(visited), 32, "program runaway")
		visited = append(visited, m.Memory.ReadInst(m.PC.Get()))
		m.Step()
	}

	assert.Equal(expected, visited)
	assert.Equal(len(expected), m.Steps)

	// No fault was routed.
	assert.Equal(Word(0), m.Memory.Read(INTERRUPT_REASON))
	assert.Equal(Word(0), m.Memory.Read(INTERRUPT_RETURN))
}
