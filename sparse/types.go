package sparse

// Array is an integer indexed array that grows on writes past its end.
// Reads past the end yield the default value without growing.
type Array[T any] struct {
	hwm int // one past the highest written index
	def T
	xs  []T
}
