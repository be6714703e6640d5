package darray

import (
	"strings"

	"github.com/infinivision/datrie/constant"
	"github.com/infinivision/datrie/cursor"
	"github.com/infinivision/datrie/errmsg"
)

func NewSearcher(idx *Index) *searcher {
	return &searcher{idx}
}

func (s *searcher) Len() int {
	return s.idx.Keys
}

// Membership returns the identifier of key, or errmsg.NotExist.
func (s *searcher) Membership(key string) (int, error) {
	if strings.IndexByte(key, constant.TermCode) >= 0 {
		return -1, errmsg.NotExist
	}
	k := cursor.New(key)
	node := s.idx.base(0)
	for {
		switch {
		case isLeaf(node):
			if id := encodeID(node); s.idx.suffixEqual(k, id) {
				return int(id), nil
			}
			return -1, errmsg.NotExist
		case !isInner(node):
			return -1, errmsg.NotExist
		}
		c := k.Read()
		child := int(node) + int(c)
		if s.idx.check(child) != int16(c) {
			return -1, errmsg.NotExist
		}
		node = s.idx.base(child)
	}
}

// CommonPrefix calls fn for every registered key that is a prefix of
// query[begin:], shortest first.
func (s *searcher) CommonPrefix(query string, begin int, fn MatchFunc) {
	q := cursor.NewAt(query, begin)
	begin = q.Pos()
	node := s.idx.base(0)
	for {
		switch {
		case isLeaf(node):
			if id := encodeID(node); s.idx.suffixPrefix(q, id) {
				fn(begin, q.Pos()+int(s.idx.Lengths[id]), int(id))
			}
			return
		case !isInner(node):
			return
		}
		// a node may end a key and still branch on for longer ones
		if t := int(node) + constant.TermCode; s.idx.check(t) == constant.TermCode {
			if v := s.idx.base(t); isLeaf(v) {
				fn(begin, q.Pos(), int(encodeID(v)))
			}
		}
		if q.EOS() {
			return
		}
		c := q.Read()
		if c == constant.TermCode {
			return
		}
		child := int(node) + int(c)
		if s.idx.check(child) != int16(c) {
			return
		}
		node = s.idx.base(child)
	}
}

func (idx *Index) base(i int) int32 {
	if i < 0 || i >= len(idx.Base) {
		return constant.BaseUnset
	}
	return idx.Base[i]
}

func (idx *Index) check(i int) int16 {
	if i < 0 || i >= len(idx.Check) {
		return constant.EmptyCheck
	}
	return idx.Check[i]
}

func (idx *Index) suffixEqual(k *cursor.Cursor, id int32) bool {
	return k.Equal(idx.Tail, int(idx.Begins[id]), int(idx.Lengths[id]))
}

func (idx *Index) suffixPrefix(k *cursor.Cursor, id int32) bool {
	return k.HasPrefix(idx.Tail, int(idx.Begins[id]), int(idx.Lengths[id]))
}
