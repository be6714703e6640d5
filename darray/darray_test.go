package darray

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/infinivision/datrie/errmsg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	k, v string
}

func (e entry) Key() string { return e.k }

func entries(ks ...string) []Entry {
	es := make([]Entry, len(ks))
	for i, k := range ks {
		es[i] = entry{k, ""}
	}
	return es
}

type match struct {
	begin, end, id int
}

func prefixes(s Searcher, q string, begin int) []match {
	var ms []match
	s.CommonPrefix(q, begin, func(b, e, id int) {
		ms = append(ms, match{b, e, id})
	})
	return ms
}

func build(t *testing.T, ks ...string) Searcher {
	t.Helper()
	idx, err := Build(entries(ks...), false, nil)
	require.NoError(t, err)
	return NewSearcher(idx)
}

func TestNestedPrefixes(t *testing.T) {
	s := build(t, "abc", "a", "ab")
	require.Equal(t, 3, s.Len())

	ids := map[string]int{}
	for _, k := range []string{"a", "ab", "abc"} {
		id, err := s.Membership(k)
		require.NoError(t, err, k)
		ids[k] = id
	}
	assert.Equal(t, map[string]int{"a": 0, "ab": 1, "abc": 2}, ids)

	assert.Equal(t, []match{{0, 1, 0}, {0, 2, 1}, {0, 3, 2}}, prefixes(s, "abcd", 0))

	for _, k := range []string{"abcd", "b", "", "ac", "abd"} {
		_, err := s.Membership(k)
		assert.ErrorIs(t, err, errmsg.NotExist, k)
	}
}

func TestEmptyIndex(t *testing.T) {
	s := build(t)
	assert.Equal(t, 0, s.Len())
	for _, k := range []string{"anything", "", "a"} {
		_, err := s.Membership(k)
		assert.ErrorIs(t, err, errmsg.NotExist)
	}
	assert.Empty(t, prefixes(s, "anything", 0))
}

func TestSingleKey(t *testing.T) {
	s := build(t, "hello")

	id, err := s.Membership("hello")
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	for _, k := range []string{"hell", "hello!", "", "h"} {
		_, err := s.Membership(k)
		assert.ErrorIs(t, err, errmsg.NotExist, k)
	}
	assert.Equal(t, []match{{0, 5, 0}}, prefixes(s, "hello world", 0))
	assert.Equal(t, []match{{2, 7, 0}}, prefixes(s, "a hello", 2))
	assert.Empty(t, prefixes(s, "hell", 0))
}

func TestEmptyKey(t *testing.T) {
	s := build(t, "", "x", "xy")

	id, err := s.Membership("")
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, []match{{0, 0, 0}, {0, 1, 1}, {0, 2, 2}}, prefixes(s, "xyz", 0))
	assert.Equal(t, []match{{3, 3, 0}}, prefixes(s, "xyz", 3))
}

func TestDuplicatesKeepFirst(t *testing.T) {
	es := []Entry{entry{"cat", "X"}, entry{"dog", "D"}, entry{"cat", "Y"}}
	var got []string
	idx, err := Build(es, false, func(id int, e Entry) {
		require.Equal(t, len(got), id)
		got = append(got, e.(entry).v)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Keys)
	assert.Equal(t, []string{"X", "D"}, got)
}

func TestCallbackOrder(t *testing.T) {
	ks := []string{"pear", "apple", "peach", "app", "banana", "ban", "b"}
	var got []string
	idx, err := Build(entries(ks...), false, func(id int, e Entry) {
		require.Equal(t, len(got), id)
		got = append(got, e.Key())
	})
	require.NoError(t, err)

	want := append([]string{}, ks...)
	sort.Strings(want)
	assert.Equal(t, want, got)

	s := NewSearcher(idx)
	for i, k := range want {
		id, err := s.Membership(k)
		require.NoError(t, err)
		assert.Equal(t, i, id, k)
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(entries("a", "b\x00c"), false, nil)
	assert.True(t, errors.Is(err, errmsg.KeyHasTermCode))

	_, err = Build(entries("b", "a"), true, nil)
	assert.ErrorIs(t, err, errmsg.OutOfOrder)

	_, err = Build(entries("a", "a", "b"), true, nil)
	assert.NoError(t, err)
}

func TestQueryWithTermCode(t *testing.T) {
	s := build(t, "a", "ab")

	_, err := s.Membership("a\x00")
	assert.ErrorIs(t, err, errmsg.NotExist)
	assert.Equal(t, []match{{0, 1, 0}}, prefixes(s, "a\x00b", 0))
}

func TestBeginOutOfRange(t *testing.T) {
	s := build(t, "", "a")
	assert.Equal(t, []match{{0, 0, 0}, {0, 1, 1}}, prefixes(s, "a", -3))
	assert.Equal(t, []match{{1, 1, 0}}, prefixes(s, "a", 9))
}

func TestHighBytes(t *testing.T) {
	ks := []string{"日本", "日本語", "日曜", "\xff", "\xff\xfe", "\x01"}
	s := build(t, ks...)
	for _, k := range ks {
		_, err := s.Membership(k)
		assert.NoError(t, err, k)
	}
	ms := prefixes(s, "日本語の辞書", 0)
	require.Len(t, ms, 2)
	assert.Equal(t, len("日本"), ms[0].end)
	assert.Equal(t, len("日本語"), ms[1].end)
}

func randomKeys(r *rand.Rand, n int, alphabet string) []string {
	ks := make([]string, n)
	for i := range ks {
		var sb strings.Builder
		for j := r.Intn(8); j > 0; j-- {
			sb.WriteByte(alphabet[r.Intn(len(alphabet))])
		}
		ks[i] = sb.String()
	}
	return ks
}

func TestRandomKeySets(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, alphabet := range []string{"ab", "abcdef", "\x01az\x7f\x80\xff"} {
		ks := randomKeys(r, 2000, alphabet)
		s := build(t, ks...)

		uniq := map[string]bool{}
		for _, k := range ks {
			uniq[k] = true
		}
		sorted := make([]string, 0, len(uniq))
		for k := range uniq {
			sorted = append(sorted, k)
		}
		sort.Strings(sorted)
		require.Equal(t, len(sorted), s.Len())

		for rank, k := range sorted {
			id, err := s.Membership(k)
			require.NoError(t, err, "%q", k)
			require.Equal(t, rank, id, "%q", k)
		}

		for _, q := range randomKeys(r, 2000, alphabet) {
			_, err := s.Membership(q)
			if uniq[q] {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errmsg.NotExist, "%q", q)
			}

			var want []match
			for i := 0; i <= len(q); i++ {
				if uniq[q[:i]] {
					want = append(want, match{0, i, sort.SearchStrings(sorted, q[:i])})
				}
			}
			require.Equal(t, want, prefixes(s, q, 0), "%q", q)
		}
	}
}

func TestCodec(t *testing.T) {
	idx, err := Build(entries("a", "ab", "abc", "b", "bcd"), false, nil)
	require.NoError(t, err)
	buf, err := idx.MarshalBinary()
	require.NoError(t, err)

	got, err := Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, idx, got)

	s := NewSearcher(got)
	id, err := s.Membership("bcd")
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	_, err = Unmarshal(buf[:len(buf)-1])
	assert.ErrorIs(t, err, errmsg.Corrupted)
	_, err = Unmarshal(append(buf, 0))
	assert.ErrorIs(t, err, errmsg.Corrupted)
}

func TestCodecRejectsDanglingLeaf(t *testing.T) {
	idx := &Index{
		Keys:    1,
		Base:    []int32{encodeID(3)},
		Check:   []int16{-1},
		Tail:    []byte("x"),
		Begins:  []int32{0},
		Lengths: []int32{1},
	}
	buf, err := idx.MarshalBinary()
	require.NoError(t, err)
	_, err = Unmarshal(buf)
	assert.ErrorIs(t, err, errmsg.Corrupted)
}

func TestEncodeID(t *testing.T) {
	for _, id := range []int32{0, 1, 42, 1<<31 - 2} {
		v := encodeID(id)
		assert.True(t, isLeaf(v))
		assert.Equal(t, id, encodeID(v))
	}
	assert.False(t, isLeaf(0))
}
