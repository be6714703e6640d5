package alloc

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/infinivision/datrie/constant"
	"github.com/infinivision/datrie/errmsg"
)

func New() *allocator {
	a := &allocator{
		ls:   []link{{head, head}},
		used: bitset.New(constant.InitSpace),
	}
	a.grow(constant.InitSpace)
	return a
}

func (a *allocator) Size() int {
	return len(a.ls)
}

// Allocate returns a base for codes and marks every base+code occupied.
//
// Candidates are anchored on the lowest code and drawn from the free list
// past constant.MaxCode, so every child lands above MaxCode and the address
// MaxCode itself stays free; it is the fixed starting point of the scan.
func (a *allocator) Allocate(codes []byte) (int, error) {
	if len(codes) == 0 {
		return 0, errmsg.OutOfRange
	}
	lo := codes[0]
	for _, c := range codes[1:] {
		if c < lo {
			lo = c
		}
	}
	prev := constant.MaxCode
	for {
		curr := a.ls[prev].next
		if curr == head {
			if err := a.grow(0); err != nil {
				return 0, err
			}
			continue
		}
		if s := curr - int(lo); !a.used.Test(uint(s)) && a.fits(s, codes) {
			a.used.Set(uint(s))
			for _, c := range codes {
				if err := a.take(s + int(c)); err != nil {
					return 0, err
				}
			}
			return s, nil
		}
		prev = curr
	}
}

// fits treats addresses past the current space as free: take grows the
// space before unlinking them.
func (a *allocator) fits(s int, codes []byte) bool {
	for _, c := range codes {
		if i := s + int(c); i < len(a.ls) && a.ls[i].next == taken {
			return false
		}
	}
	return true
}

func (a *allocator) take(i int) error {
	if i > constant.MaxAddress {
		return errmsg.OutOfSpace
	}
	for i >= len(a.ls) {
		if err := a.grow(i + 1); err != nil {
			return err
		}
	}
	l := a.ls[i]
	a.ls[l.prev].next = l.next
	a.ls[l.next].prev = l.prev
	a.ls[i] = link{taken, taken}
	return nil
}

// grow extends the space to max(hint, AllocRatio*Size()) and appends the new
// addresses to the tail of the free list.
func (a *allocator) grow(hint int) error {
	n := len(a.ls) * constant.AllocRatio
	if hint > n {
		n = hint
	}
	if n > constant.MaxAddress+1 {
		n = constant.MaxAddress + 1
	}
	m := len(a.ls)
	if n <= m {
		return errmsg.OutOfSpace
	}
	tail := a.ls[head].prev
	ls := make([]link, n)
	copy(ls, a.ls)
	for i := m; i < n; i++ {
		ls[i] = link{i - 1, i + 1}
	}
	ls[m].prev = tail
	ls[n-1].next = head
	ls[tail].next = m
	ls[head].prev = n - 1
	a.ls = ls
	return nil
}
