package alloc

import "github.com/bits-and-blooms/bitset"

const (
	head  = 0  // list head, also the root address
	taken = -1 // next of an address removed from the free list
)

// Allocator places sibling edges of one trie node: it finds a base s such
// that s is not already some node's base and every s+code is free.
type Allocator interface {
	Size() int
	Allocate([]byte) (int, error)
}

// link is one address of the virtual address space. Free addresses form a
// circular doubly linked list in ascending order hanging off head.
type link struct {
	prev, next int
}

type allocator struct {
	ls   []link
	used *bitset.BitSet // addresses already handed out as a base
}
