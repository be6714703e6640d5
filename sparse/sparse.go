package sparse

func New[T any](def T) *Array[T] {
	return &Array[T]{def: def}
}

func (a *Array[T]) Get(i int) T {
	if i < 0 || i >= len(a.xs) {
		return a.def
	}
	return a.xs[i]
}

// Set writes v at i, first growing the backing storage to at least 2*i+1
// slots filled with the default value.
func (a *Array[T]) Set(i int, v T) {
	if i >= len(a.xs) {
		a.grow(2*i + 1)
	}
	a.xs[i] = v
	if i >= a.hwm {
		a.hwm = i + 1
	}
}

func (a *Array[T]) Len() int {
	return a.hwm
}

func (a *Array[T]) Cap() int {
	return len(a.xs)
}

// Slice returns the written prefix [0, Len()).
func (a *Array[T]) Slice() []T {
	return a.xs[:a.hwm:a.hwm]
}

func (a *Array[T]) grow(n int) {
	xs := make([]T, n)
	copy(xs, a.xs)
	for i := len(a.xs); i < n; i++ {
		xs[i] = a.def
	}
	a.xs = xs
}
