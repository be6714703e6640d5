package dict

import (
	"io"

	"github.com/infinivision/datrie/darray"
	"github.com/infinivision/datrie/data"
	"github.com/nnsgmsone/damrey/logger"
)

/*
Dictionary maps a fixed set of keys to values. It is built once and is then
safe for concurrent use by any number of readers.
*/
type Dictionary interface {
	Len() int
	Save(string) error

	Membership(string) (int, error)
	Prefix(string, int, darray.MatchFunc)

	ValueOf(int) (string, error)
	Lookup(string) (string, error)
}

type Entry interface {
	Key() string
	Value() string
}

type Config struct {
	Sorted    bool // entries are already sorted by key
	Encoding  string
	Separator string
	LogWriter io.Writer
}

type dict struct {
	idx *darray.Index
	s   darray.Searcher
	a   *data.Arena
	log logger.Log
}
