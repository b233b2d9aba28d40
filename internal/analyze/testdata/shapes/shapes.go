package shapes

import "container/list"

// Stack is a LIFO of ints.
//
//lit:vec
type Stack struct {
	items []int
}

func NewStack() *Stack { return &Stack{} }

func (s *Stack) Push(v int) { s.items = append(s.items, v) }

//lit:set
type Color int

//lit:map
type Handler func()

//lit:vec
type Queue list.List

//lit:vec
type Alias = Stack

//lit:vec
type Box[T any] struct {
	v T
}

type (
	//lit:set
	Tags struct{}

	Plain struct{}
)

//lit:vec
//lit:set
type Both struct{}

//lit:vecc
type Typo struct{}

func local() {
	//lit:vec
	type Inner struct{}

	_ = Inner{}
}

// The helper does not exist until litgen runs.
var _ = stack(1, 2, 3)
