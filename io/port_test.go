package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAscii_Emit(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	port := &Ascii{Output: &out}

	port.Emit('H')
	port.Emit(0xff00 | 'i') // only the low byte reaches the stream
	port.Emit('\n')

	assert.Equal("Hi\n", out.String())
}

func TestAscii_EmitZero(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	port := &Ascii{Output: &out}

	port.Emit(0)

	assert.Equal([]byte{0}, out.Bytes())
}

func TestAscii_Escape(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	port := &Ascii{Output: &out, Escape: true}

	port.Emit('a')
	port.Emit('\n')
	port.Emit('b')

	assert.Equal(`a\nb`, out.String())
}

func TestSmall_Emit(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		value uint16
		want  string
	}){
		{"two_chars", (7 << 6) | 8, "HI"},
		{"space_pair", (SMALL_SPACE << 6) | 0, " A"},
		{"none_second", (2 << 6) | SMALL_NONE, "C"},
		{"none_first", (SMALL_NONE << 6) | 3, "D"},
		{"none_both", (SMALL_NONE << 6) | SMALL_NONE, ""},
		{"zero_value", 0, "AA"},
		{"inst_ignored", 0xf000 | (7 << 6) | 8, "HI"},
	}

	for _, entry := range table {
		var out bytes.Buffer
		port := &Small{Output: &out}

		port.Emit(entry.value)
		assert.Equal(entry.want, out.String(), entry.name)
	}
}

func TestPorts_NilOutput(t *testing.T) {
	assert := assert.New(t)

	assert.NotPanics(func() {
		(&Ascii{}).Emit('x')
		(&Small{}).Emit(0)
	})
}
