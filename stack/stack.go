package stack

import "container/list"

func New[T any]() *stack[T] {
	return &stack[T]{new(list.List)}
}

func (s *stack[T]) Len() int {
	return s.l.Len()
}

func (s *stack[T]) IsEmpty() bool {
	return s.l.Len() == 0
}

func (s *stack[T]) Pop() (T, bool) {
	if e := s.l.Front(); e != nil {
		s.l.Remove(e)
		return e.Value.(T), true
	}
	var zero T
	return zero, false
}

func (s *stack[T]) Peek() (T, bool) {
	if e := s.l.Front(); e != nil {
		return e.Value.(T), true
	}
	var zero T
	return zero, false
}

func (s *stack[T]) Push(v T) {
	s.l.PushFront(v)
}
