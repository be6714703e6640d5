package dict

import (
	"fmt"
	"io"
	"os"

	"github.com/infinivision/datrie/darray"
	"github.com/infinivision/datrie/data"
	"github.com/infinivision/datrie/disk"
	"github.com/infinivision/datrie/errmsg"
	"github.com/infinivision/datrie/loader"
	"github.com/nnsgmsone/damrey/logger"
)

func DefaultConfig() Config {
	return Config{
		Sorted:    false,
		Encoding:  "utf-8",
		Separator: "\t",
		LogWriter: os.Stderr,
	}
}

// New builds a dictionary from es. Of several entries sharing a key the
// first in key order wins; with an unsorted input that is the first in
// input order.
func New(es []Entry, cfg Config) (*dict, error) {
	log := newLog(cfg)
	b := data.NewBuilder()
	xs := make([]darray.Entry, len(es))
	for i, e := range es {
		xs[i] = e
	}
	var aerr error
	idx, err := darray.Build(xs, cfg.Sorted, func(id int, e darray.Entry) {
		if aerr == nil {
			aerr = b.Append(id, e.(Entry).Value())
		}
	})
	if err == nil {
		err = aerr
	}
	if err != nil {
		log.Errorf("failed to build dictionary of %v entries: %v\n", len(es), err)
		return nil, err
	}
	return newDict(idx, b.Arena(), log), nil
}

// Load builds a dictionary from key/value lines read from r.
func Load(r io.Reader, cfg Config) (*dict, error) {
	ps, err := loader.Load(r, loader.Config{Encoding: cfg.Encoding, Separator: cfg.Separator})
	if err != nil {
		newLog(cfg).Errorf("failed to load entries: %v\n", err)
		return nil, err
	}
	es := make([]Entry, len(ps))
	for i, p := range ps {
		es[i] = p
	}
	return New(es, cfg)
}

// Open reads a dictionary written by Save.
func Open(path string, cfg Config) (*dict, error) {
	log := newLog(cfg)
	idx, a, err := open(path)
	if err != nil {
		log.Errorf("failed to open '%s': %v\n", path, err)
		return nil, err
	}
	return newDict(idx, a, log), nil
}

func (d *dict) Save(path string) error {
	if err := d.save(path); err != nil {
		d.log.Errorf("failed to save '%s': %v\n", path, err)
		return err
	}
	return nil
}

func (d *dict) Len() int {
	return d.s.Len()
}

func (d *dict) Membership(k string) (int, error) {
	return d.s.Membership(k)
}

func (d *dict) Prefix(q string, begin int, fn darray.MatchFunc) {
	d.s.CommonPrefix(q, begin, fn)
}

func (d *dict) ValueOf(id int) (string, error) {
	return d.a.Get(id)
}

func (d *dict) Lookup(k string) (string, error) {
	id, err := d.s.Membership(k)
	if err != nil {
		return "", err
	}
	return d.a.Get(id)
}

func newDict(idx *darray.Index, a *data.Arena, log logger.Log) *dict {
	return &dict{idx, darray.NewSearcher(idx), a, log}
}

func newLog(cfg Config) logger.Log {
	w := cfg.LogWriter
	if w == nil {
		w = os.Stderr
	}
	return logger.New(w, "datrie")
}

func (d *dict) save(path string) error {
	ib, err := d.idx.MarshalBinary()
	if err != nil {
		return err
	}
	ab, err := d.a.MarshalBinary()
	if err != nil {
		return err
	}
	return disk.Write(path, ib, ab)
}

func open(path string) (*darray.Index, *data.Arena, error) {
	recs, err := disk.Read(path)
	if err != nil {
		return nil, nil, err
	}
	if len(recs) != 2 {
		return nil, nil, fmt.Errorf("%v records: %w", len(recs), errmsg.Corrupted)
	}
	idx, err := darray.Unmarshal(recs[0])
	if err != nil {
		return nil, nil, err
	}
	a, err := data.Unmarshal(recs[1])
	if err != nil {
		return nil, nil, err
	}
	if a.Len() != idx.Keys {
		return nil, nil, fmt.Errorf("%v values for %v keys: %w", a.Len(), idx.Keys, errmsg.Corrupted)
	}
	return idx, a, nil
}
