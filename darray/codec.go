package darray

import (
	"github.com/infinivision/datrie/codec"
	"github.com/infinivision/datrie/errmsg"
)

func (idx *Index) MarshalBinary() ([]byte, error) {
	e := codec.NewEncoder(4*6 + 4*len(idx.Base) + 2*len(idx.Check) + len(idx.Tail) + 8*idx.Keys)
	e.Uint32(uint32(idx.Keys))
	e.Int32s(idx.Base)
	e.Int16s(idx.Check)
	e.Bytes32(idx.Tail)
	e.Int32s(idx.Begins)
	e.Int32s(idx.Lengths)
	return e.Bytes(), nil
}

func Unmarshal(buf []byte) (*Index, error) {
	idx := new(Index)
	d := codec.NewDecoder(buf)
	idx.Keys = int(d.Uint32())
	idx.Base = d.Int32s()
	idx.Check = d.Int16s()
	idx.Tail = d.Bytes32()
	idx.Begins = d.Int32s()
	idx.Lengths = d.Int32s()
	if err := d.Done(); err != nil {
		return nil, err
	}
	if err := idx.validate(); err != nil {
		return nil, err
	}
	return idx, nil
}

// validate checks that every leaf and tail reference stays in bounds, so a
// searcher never indexes outside the arrays.
func (idx *Index) validate() error {
	if len(idx.Begins) != idx.Keys || len(idx.Lengths) != idx.Keys {
		return errmsg.Corrupted
	}
	for i := 0; i < idx.Keys; i++ {
		b, n := int(idx.Begins[i]), int(idx.Lengths[i])
		if b < 0 || n < 0 || b+n > len(idx.Tail) {
			return errmsg.Corrupted
		}
	}
	for _, v := range idx.Base {
		if isLeaf(v) && int(encodeID(v)) >= idx.Keys {
			return errmsg.Corrupted
		}
	}
	return nil
}
