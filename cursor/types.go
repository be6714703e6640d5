package cursor

// Cursor is a forward-only reader over the bytes of one key.
type Cursor struct {
	s    string
	curr int
}
