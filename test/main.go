package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/infinivision/datrie/dict"
	"github.com/infinivision/datrie/loader"
)

func main() {
	var es []dict.Entry

	for i := 0; i < 100; i++ {
		es = append(es, loader.Pair{K: fmt.Sprintf("/u/b/u_%v", i), V: fmt.Sprintf("%v", i)})
	}
	d, err := dict.New(es, dict.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	{
		for i := 0; i < 100; i++ {
			if v, err := d.Lookup(fmt.Sprintf("/u/b/u_%v", i)); err != nil {
				log.Fatal(err)
			} else if v != fmt.Sprintf("%v", i) {
				log.Fatal(fmt.Errorf("%s is not %v - %v\n", fmt.Sprintf("/u/b/u_%v", i), i, v))
			}
		}
	}
	{
		q := "/u/b/u_99/x"
		d.Prefix(q, 0, func(begin, end, id int) {
			v, _ := d.ValueOf(id)
			fmt.Printf("%s: %s\n", q[begin:end], v)
		})
	}
	{
		path := filepath.Join(os.TempDir(), "test.idx")
		defer os.Remove(path)
		if err := d.Save(path); err != nil {
			log.Fatal(err)
		}
		o, err := dict.Open(path, dict.DefaultConfig())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%v keys reloaded from %s\n", o.Len(), path)
	}
}
