package darray

import (
	"github.com/infinivision/datrie/alloc"
	"github.com/infinivision/datrie/cursor"
	"github.com/infinivision/datrie/sparse"
)

type Entry interface {
	Key() string
}

// Callback receives each distinct key's identifier during Build, in
// ascending key order, together with the first entry carrying that key.
type Callback func(int, Entry)

// MatchFunc receives one common-prefix match: query[begin:end] is the key
// registered under id.
type MatchFunc func(begin, end, id int)

// Index is the frozen double array. Base holds either a child base (>= 0) or
// an encoded leaf identifier (< 0); Check holds the code of the edge leading
// into each address. Tail[Begins[id]:Begins[id]+Lengths[id]] is the unread
// suffix of the key registered under id. An Index is never written after
// Build and may be shared by any number of readers.
type Index struct {
	Keys    int
	Base    []int32
	Check   []int16
	Tail    []byte
	Begins  []int32
	Lengths []int32
}

type Searcher interface {
	Len() int
	Membership(string) (int, error)
	CommonPrefix(string, int, MatchFunc)
}

type searcher struct {
	idx *Index
}

// frame is one pending slice [begin, end) of the sorted keys, hanging off
// the node at root.
type frame struct {
	begin, end int
	root       int
}

type builder struct {
	fn      Callback
	es      []Entry
	keys    []*cursor.Cursor
	a       alloc.Allocator
	base    *sparse.Array[int32]
	check   *sparse.Array[int16]
	tail    []byte
	begins  []int32
	lengths []int32
}
