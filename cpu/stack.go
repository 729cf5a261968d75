package cpu

const (
	STACK_LIMIT = 16 // Default hardware stack depth.
)

// Stack is the bounded LIFO word store of the hardware-stack variant.
// Popping when empty returns zero. Pushing when full evicts the oldest
// entry, a ring shift, so the newest value always lands on top.
type Stack struct {
	Limit int // Capacity, fixed at construction.
	Data  []Word
}

// NewStack creates a stack with the given capacity. A non-positive depth
// falls back to STACK_LIMIT.
func NewStack(depth int) *Stack {
	if depth <= 0 {
		depth = STACK_LIMIT
	}
	return &Stack{Limit: depth}
}

// Push places value on top of the stack, evicting the oldest entry when
// the stack is full.
func (s *Stack) Push(value Word) {
	if s.Full() {
		copy(s.Data, s.Data[1:])
		s.Data[len(s.Data)-1] = value
		return
	}

	s.Data = append(s.Data, value)
}

// Pop removes and returns the top of the stack, or zero when empty.
func (s *Stack) Pop() (value Word) {
	value, ok := s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

// Peek returns the top of the stack without removing it.
func (s *Stack) Peek() (value Word, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= s.Limit
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
