package ds

type Stack[T any] struct {
	slice []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		slice: make([]T, 0),
	}
}

func (r *Stack[T]) Len() int {
	return len(r.slice)
}

func (r *Stack[T]) Push(t T) T {
	r.slice = append(r.slice, t)
	return t
}

// Pop removes the last element. ok is false on an empty stack.
func (r *Stack[T]) Pop() (last T, ok bool) {
	if r.Len() == 0 {
		return last, false
	}
	last = r.slice[r.Len()-1]
	r.slice = r.slice[:r.Len()-1]
	return last, true
}
