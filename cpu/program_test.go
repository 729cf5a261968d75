package cpu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Statements: []Statement{
			{LineNo: 1, Addr: 0, Words: []string{"AND", "0x000"}, Code: MakeWord(OP_AND, 0x000)},
			{LineNo: 2, Addr: 1, Words: []string{"ADD", "0x048"}, Code: MakeWord(OP_ADD, 0x048)},
			{LineNo: 4, Addr: 2, Words: []string{"HALT"}, Code: MakeWord(OP_HALT, 0)},
		},
	}
}

func TestProgram_Words(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	var addrs []uint16
	var words []Word
	for addr, word := range prog.Words() {
		addrs = append(addrs, addr)
		words = append(words, word)
	}

	assert.Equal([]uint16{0, 1, 2}, addrs)
	assert.Equal([]Word{0x9000, 0xb048, 0x0000}, words)
}

func TestProgram_Image(t *testing.T) {
	assert := assert.New(t)

	image := testProgram().Image()
	assert.Equal([]byte{0x90, 0x00, 0xb0, 0x48, 0x00, 0x00}, image)
}

// Image() and Load() must put the machine in the same state.
func TestProgram_Load(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	direct := NewMachine(0)
	prog.Load(direct)

	imaged := NewMachine(0)
	assert.NoError(imaged.LoadImage(bytes.NewReader(prog.Image())))

	assert.Equal(direct.Memory, imaged.Memory)
	assert.Equal(Word(0xb048), direct.Memory.Read(1))
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	st := prog.Debug(1)
	assert.NotNil(st)
	assert.Equal(2, st.LineNo)
	assert.Equal([]string{"ADD", "0x048"}, st.Words)

	assert.Nil(prog.Debug(3))
}
