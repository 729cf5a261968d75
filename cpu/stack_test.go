package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(0)
	assert.Equal(STACK_LIMIT, s.Limit)
	assert.True(s.Empty())
	assert.False(s.Full())

	s.Push(0x1234)
	assert.False(s.Empty())
	assert.Equal(1, len(s.Data))
	assert.Equal(Word(0x1234), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(0)
	s.Push(0x1234)
	s.Push(0xabcd)

	assert.Equal(Word(0xabcd), s.Pop())
	assert.Equal(1, len(s.Data))

	assert.Equal(Word(0x1234), s.Pop())
	assert.Equal(0, len(s.Data))
}

// Popping an empty stack returns zero, not an error.
func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(0)
	assert.Equal(Word(0), s.Pop())
	assert.True(s.Empty())
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(0)
	s.Push(0x1234)
	s.Push(0xabcd)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(Word(0xabcd), val)
	assert.Equal(2, len(s.Data))
}

func TestStack_Peek_Empty(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(0)
	val, ok := s.Peek()
	assert.False(ok)
	assert.Equal(Word(0), val)
}

// Pushing onto a full stack evicts the oldest entry, shifting the rest.
func TestStack_Push_Full(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(4)
	for i := range 4 {
		s.Push(Word(i))
	}
	assert.True(s.Full())

	s.Push(Word(0x1234))
	assert.Equal(4, len(s.Data))
	assert.Equal([]Word{1, 2, 3, 0x1234}, s.Data)

	// LIFO order is preserved after the shift.
	assert.Equal(Word(0x1234), s.Pop())
	assert.Equal(Word(3), s.Pop())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(0)
	s.Push(0x1234)
	s.Push(0xabcd)
	assert.Equal(2, len(s.Data))

	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, len(s.Data))
}

func TestStack_Capacity(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(16)

	for i := range 16 {
		assert.False(s.Full())
		s.Push(Word(i))
	}

	assert.True(s.Full())
	assert.Equal(16, len(s.Data))
}
