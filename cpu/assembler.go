package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	sink "github.com/hwsim/sma16/io"
)

// Assembler is a single-pass assembler for the SMA-16 instruction set.
// Lines hold an optional `name:` label, then a mnemonic or directive and
// one operand. `#` starts a comment. Operands are numeric literals,
// `@name` label references, `?` placeholders, packed character literals
// (s"AB", a"AB", s'c', a'c'), or compile-time $( ... ) expressions.
type Assembler struct {
	Verbose    bool        // If set, verbosely logs the assembler actions.
	Statements []Statement // Generated statements, one word each.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate before
// parsing begins. The machine's well-known addresses arrive this way.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple numeric word.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	v64, err := strconv.ParseUint(word, 0, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint16(v64)
	return
}

// smallPair packs two SMALL-encoded characters into one value.
func smallPair(first, second byte) (value uint16, err error) {
	hi, ok := sink.EncodeSmall(first)
	if !ok {
		err = ErrParseCharacter(string(first))
		return
	}
	lo, ok := sink.EncodeSmall(second)
	if !ok {
		err = ErrParseCharacter(string(second))
		return
	}

	value = (hi << 6) | lo
	return
}

// operandOf evaluates an instruction operand. Label references come back
// as a non-empty ref, linked after the parse completes.
func (asm *Assembler) operandOf(operand string) (value uint16, ref string, err error) {
	switch {
	case len(operand) == 0 || operand == "?":
		// Placeholder, same as zero.
	case strings.HasPrefix(operand, "@"):
		ref = operand[1:]
	case strings.HasPrefix(operand, `s"`):
		var text string
		text, err = strconv.Unquote(operand[1:])
		if err != nil || len(text) != 2 {
			err = ErrParseString(operand)
			return
		}
		value, err = smallPair(text[0], text[1])
	case strings.HasPrefix(operand, `a"`):
		var text string
		text, err = strconv.Unquote(operand[1:])
		if err != nil || len(text) != 2 {
			err = ErrParseString(operand)
			return
		}
		value = (uint16(text[1]) << 8) | uint16(text[0])
	case strings.HasPrefix(operand, "s'"):
		if len(operand) != 4 || operand[3] != '\'' {
			err = ErrParseString(operand)
			return
		}
		value, err = smallPair('_', operand[2])
	case strings.HasPrefix(operand, "a'"):
		if len(operand) != 4 || operand[3] != '\'' {
			err = ErrParseString(operand)
			return
		}
		value = uint16(operand[2])
	default:
		value, err = asm.valueOf(operand)
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value16 uint16
		value16, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(value16))
	}
	err = nil
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

// parseLine splits one source line into words, after comment stripping,
// $() evaluation, and equate expansion.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Strip comments.
	line, _, _ = strings.Cut(line, "#")
	line = strings.TrimSpace(line)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// currentAddr gets the address the next generated word will occupy.
func (asm *Assembler) currentAddr() int {
	if len(asm.Statements) == 0 {
		return 0
	}

	return asm.Statements[len(asm.Statements)-1].Addr + 1
}

// parseWords evaluates the words of one line into a machine word.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// label-only or empty line
	if len(words) == 0 {
		return
	}

	initial_words := words
	operand := strings.Join(words[1:], " ")

	var code Word
	var ref string

	switch {
	case words[0] == ".word":
		var value uint16
		value, ref, err = asm.operandOf(operand)
		if err != nil {
			return
		}
		code = Word(value)
	case strings.HasPrefix(words[0], "."):
		err = ErrDirectiveSyntax
		return
	default:
		op, ok := opcodeByName[strings.ToUpper(words[0])]
		if !ok {
			err = ErrOpcodeInvalid
			return
		}
		var value uint16
		value, ref, err = asm.operandOf(operand)
		if err != nil {
			return
		}
		if value > uint16(DATA_MASK) {
			err = ErrDataRange(value)
			return
		}
		code = MakeWord(op, value)
	}

	addr := asm.currentAddr()
	if addr >= MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	asm.Statements = append(asm.Statements, Statement{
		LineNo: lineno,
		Addr:   addr,
		Words:  initial_words,
		Code:   code,
		Ref:    ref,
	})

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Statements = asm.Statements[:0]
	asm.Equate = map[string]string{"LINENO": "0"}
	for attr, val := range maps.All(asm.predefine) {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of label references.
	for n := range asm.Statements {
		st := &asm.Statements[n]

		if len(st.Ref) == 0 {
			continue
		}
		addr, ok := asm.Label[st.Ref]
		if !ok {
			err = ErrLabelMissing(st.Ref)
			lineno, line = st.LineNo, strings.Join(st.Words, " ")
			return
		}
		st.Code = st.Code.WithData(uint16(addr))
	}

	prog = &Program{
		Statements: slices.Clone(asm.Statements),
	}

	return
}
