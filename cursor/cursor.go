package cursor

import (
	"strings"

	"github.com/infinivision/datrie/constant"
)

func New(s string) *Cursor {
	return &Cursor{s: s}
}

// NewAt starts reading s at offset i, clamped to [0, len(s)].
func NewAt(s string, i int) *Cursor {
	switch {
	case i < 0:
		i = 0
	case i > len(s):
		i = len(s)
	}
	return &Cursor{s: s, curr: i}
}

// Read returns the next byte and advances. Once the key is exhausted it
// returns constant.TermCode and stays put.
func (c *Cursor) Read() byte {
	if c.EOS() {
		return constant.TermCode
	}
	b := c.s[c.curr]
	c.curr++
	return b
}

func (c *Cursor) EOS() bool {
	return c.curr >= len(c.s)
}

func (c *Cursor) Pos() int {
	return c.curr
}

func (c *Cursor) Rest() string {
	return c.s[c.curr:]
}

// RestAt returns the unread part shifted by offset. A shifted start that falls
// outside the key yields Rest().
func (c *Cursor) RestAt(offset int) string {
	if i := c.curr + offset; i >= 0 && i < len(c.s) {
		return c.s[i:]
	}
	return c.Rest()
}

// HasPrefix reports whether the unread part starts with buf[begin:begin+n].
// It does not advance.
func (c *Cursor) HasPrefix(buf []byte, begin, n int) bool {
	if n < 0 || begin < 0 || begin+n > len(buf) || len(c.s)-c.curr < n {
		return false
	}
	return c.s[c.curr:c.curr+n] == string(buf[begin:begin+n])
}

// Equal reports whether the unread part is exactly buf[begin:begin+n].
func (c *Cursor) Equal(buf []byte, begin, n int) bool {
	return len(c.s)-c.curr == n && c.HasPrefix(buf, begin, n)
}

// Compare orders cursors by their unread parts.
func (c *Cursor) Compare(d *Cursor) int {
	return strings.Compare(c.Rest(), d.Rest())
}
