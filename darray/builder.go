package darray

import (
	"fmt"
	"sort"
	"strings"

	"github.com/infinivision/datrie/alloc"
	"github.com/infinivision/datrie/constant"
	"github.com/infinivision/datrie/cursor"
	"github.com/infinivision/datrie/errmsg"
	"github.com/infinivision/datrie/sparse"
	"github.com/infinivision/datrie/stack"
)

// Build constructs an Index over the keys of es. Unless sorted is set the
// entries are stably sorted by key first; of several entries sharing a key
// only the first is kept. fn, if not nil, is called once per distinct key
// with its identifier, in ascending key order.
func Build(es []Entry, sorted bool, fn Callback) (*Index, error) {
	b, err := newBuilder(es, sorted, fn)
	if err != nil {
		return nil, err
	}
	if err := b.build(); err != nil {
		return nil, err
	}
	return b.freeze(), nil
}

func newBuilder(es []Entry, sorted bool, fn Callback) (*builder, error) {
	type item struct {
		k *cursor.Cursor
		e Entry
	}

	xs := make([]item, len(es))
	for i, e := range es {
		k := e.Key()
		if strings.IndexByte(k, constant.TermCode) >= 0 {
			return nil, fmt.Errorf("key %q: %w", k, errmsg.KeyHasTermCode)
		}
		xs[i] = item{cursor.New(k), e}
	}
	if !sorted {
		sort.SliceStable(xs, func(i, j int) bool { return xs[i].k.Compare(xs[j].k) < 0 })
	}
	b := &builder{
		fn:    fn,
		a:     alloc.New(),
		base:  sparse.New(constant.BaseUnset),
		check: sparse.New(constant.EmptyCheck),
	}
	for _, x := range xs {
		if n := len(b.keys); n > 0 {
			switch d := x.k.Compare(b.keys[n-1]); {
			case d == 0:
				continue
			case d < 0:
				return nil, fmt.Errorf("key %q: %w", x.k.Rest(), errmsg.OutOfOrder)
			}
		}
		b.keys = append(b.keys, x.k)
		b.es = append(b.es, x.e)
	}
	if len(b.keys) > constant.MaxKeys {
		return nil, errmsg.TooManyKeys
	}
	return b, nil
}

// build walks the key slices depth first. Children are pushed in reverse
// so they pop in key order, which keeps identifiers in key order.
func (b *builder) build() error {
	if len(b.keys) == 0 {
		return nil
	}
	s := stack.New[frame]()
	s.Push(frame{0, len(b.keys), 0})
	for !s.IsEmpty() {
		f, _ := s.Pop()
		if f.end-f.begin == 1 {
			if err := b.insertTail(f.begin, f.root); err != nil {
				return err
			}
			continue
		}
		codes, ends := b.branch(f.begin, f.end)
		x, err := b.a.Allocate(codes)
		if err != nil {
			return err
		}
		b.base.Set(f.root, int32(x))
		for i := len(codes) - 1; i >= 0; i-- {
			child := x + int(codes[i])
			b.check.Set(child, int16(codes[i]))
			s.Push(frame{ends[i], ends[i+1], child})
		}
	}
	return nil
}

// branch reads the next code of every key in [begin, end) and splits the
// slice into runs sharing that code. ends[i] is where the run of codes[i]
// starts; the last element of ends is end.
func (b *builder) branch(begin, end int) ([]byte, []int) {
	var codes []byte
	var ends []int

	for i := begin; i < end; i++ {
		c := b.keys[i].Read()
		if n := len(codes); n == 0 || codes[n-1] != c {
			codes = append(codes, c)
			ends = append(ends, i)
		}
	}
	return codes, append(ends, end)
}

func (b *builder) insertTail(i, node int) error {
	suff := b.keys[i].Rest()
	if len(b.tail)+len(suff) > constant.MaxAddress {
		return errmsg.OutOfSpace
	}
	id := len(b.begins)
	b.base.Set(node, encodeID(int32(id)))
	b.begins = append(b.begins, int32(len(b.tail)))
	b.lengths = append(b.lengths, int32(len(suff)))
	b.tail = append(b.tail, suff...)
	if b.fn != nil {
		b.fn(id, b.es[i])
	}
	return nil
}

func (b *builder) freeze() *Index {
	return &Index{
		Keys:    len(b.keys),
		Base:    b.base.Slice(),
		Check:   b.check.Slice(),
		Tail:    b.tail,
		Begins:  b.begins,
		Lengths: b.lengths,
	}
}
