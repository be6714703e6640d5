package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/infinivision/datrie/errmsg"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8BOM,
	"utf-16":       unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM),
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"shift_jis":    japanese.ShiftJIS,
	"euc-jp":       japanese.EUCJP,
	"iso-2022-jp":  japanese.ISO2022JP,
	"windows-1252": charmap.Windows1252,
}

// Encoding looks up a supported input encoding by name.
func Encoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = "utf-8"
	}
	if e, ok := encodings[strings.ToLower(name)]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%q: %w", name, errmsg.UnknownEncoding)
}

// Load reads key/value lines from r in input order. Blank lines and lines
// starting with '#' are skipped.
func Load(r io.Reader, cfg Config) ([]Pair, error) {
	var ps []Pair

	e, err := Encoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	sep := cfg.Separator
	if sep == "" {
		sep = "\t"
	}
	s := bufio.NewScanner(transform.NewReader(r, e.NewDecoder()))
	s.Buffer(make([]byte, 0, 4096), MaxLineSize)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimRight(s.Text(), "\r")
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		i := strings.Index(line, sep)
		if i < 0 {
			return nil, fmt.Errorf("line %v: %w", n, errmsg.BadLine)
		}
		ps = append(ps, Pair{line[:i], line[i+len(sep):]})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return ps, nil
}
