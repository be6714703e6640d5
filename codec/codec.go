package codec

import (
	"encoding/binary"

	"github.com/infinivision/datrie/errmsg"
)

func NewEncoder(sizeHint int) *Encoder {
	return &Encoder{make([]byte, 0, sizeHint)}
}

func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) Uint32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *Encoder) Int32s(xs []int32) {
	e.Uint32(uint32(len(xs)))
	for _, x := range xs {
		e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(x))
	}
}

func (e *Encoder) Int16s(xs []int16) {
	e.Uint32(uint32(len(xs)))
	for _, x := range xs {
		e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(x))
	}
}

func (e *Encoder) Bytes32(xs []byte) {
	e.Uint32(uint32(len(xs)))
	e.buf = append(e.buf, xs...)
}

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

func (d *Decoder) Err() error {
	return d.err
}

// Done reports errmsg.Corrupted if bytes are left over.
func (d *Decoder) Done() error {
	if d.err == nil && len(d.buf) != 0 {
		d.err = errmsg.Corrupted
	}
	return d.err
}

func (d *Decoder) Uint32() uint32 {
	if !d.need(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(d.buf)
	d.buf = d.buf[4:]
	return v
}

func (d *Decoder) Int32s() []int32 {
	n := int(d.Uint32())
	if !d.need(4 * n) {
		return nil
	}
	xs := make([]int32, n)
	for i := range xs {
		xs[i] = int32(binary.LittleEndian.Uint32(d.buf[4*i:]))
	}
	d.buf = d.buf[4*n:]
	return xs
}

func (d *Decoder) Int16s() []int16 {
	n := int(d.Uint32())
	if !d.need(2 * n) {
		return nil
	}
	xs := make([]int16, n)
	for i := range xs {
		xs[i] = int16(binary.LittleEndian.Uint16(d.buf[2*i:]))
	}
	d.buf = d.buf[2*n:]
	return xs
}

func (d *Decoder) Bytes32() []byte {
	n := int(d.Uint32())
	if !d.need(n) {
		return nil
	}
	xs := append([]byte{}, d.buf[:n]...)
	d.buf = d.buf[n:]
	return xs
}

func (d *Decoder) need(n int) bool {
	if d.err != nil {
		return false
	}
	if n < 0 || len(d.buf) < n {
		d.err = errmsg.Corrupted
		return false
	}
	return true
}
