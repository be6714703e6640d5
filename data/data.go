package data

import (
	"fmt"

	"github.com/infinivision/datrie/codec"
	"github.com/infinivision/datrie/constant"
	"github.com/infinivision/datrie/errmsg"
)

func NewBuilder() *builder {
	return &builder{new(Arena)}
}

func (b *builder) Len() int {
	return b.a.Len()
}

// Append stores v as the value of id, which must be the next identifier.
func (b *builder) Append(id int, v string) error {
	if id != b.a.Len() {
		return fmt.Errorf("id %v, expected %v: %w", id, b.a.Len(), errmsg.OutOfOrder)
	}
	if len(b.a.buf)+len(v) > constant.MaxAddress {
		return errmsg.OutOfSpace
	}
	b.a.begins = append(b.a.begins, int32(len(b.a.buf)))
	b.a.lengths = append(b.a.lengths, int32(len(v)))
	b.a.buf = append(b.a.buf, v...)
	return nil
}

func (b *builder) Arena() *Arena {
	return b.a
}

func (a *Arena) Len() int {
	return len(a.begins)
}

func (a *Arena) Get(id int) (string, error) {
	if id < 0 || id >= len(a.begins) {
		return "", fmt.Errorf("id %v: %w", id, errmsg.OutOfRange)
	}
	o := int(a.begins[id])
	return string(a.buf[o : o+int(a.lengths[id])]), nil
}

func (a *Arena) MarshalBinary() ([]byte, error) {
	e := codec.NewEncoder(12 + len(a.buf) + 8*len(a.begins))
	e.Bytes32(a.buf)
	e.Int32s(a.begins)
	e.Int32s(a.lengths)
	return e.Bytes(), nil
}

func Unmarshal(buf []byte) (*Arena, error) {
	a := new(Arena)
	d := codec.NewDecoder(buf)
	a.buf = d.Bytes32()
	a.begins = d.Int32s()
	a.lengths = d.Int32s()
	if err := d.Done(); err != nil {
		return nil, err
	}
	if len(a.begins) != len(a.lengths) {
		return nil, errmsg.Corrupted
	}
	for i := range a.begins {
		o, n := int(a.begins[i]), int(a.lengths[i])
		if o < 0 || n < 0 || o+n > len(a.buf) {
			return nil, errmsg.Corrupted
		}
	}
	return a, nil
}
