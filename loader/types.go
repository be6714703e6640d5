package loader

const (
	MaxLineSize = 1 << 20
)

type Config struct {
	Encoding  string // "" means utf-8
	Separator string // "" means a tab
}

// Pair is one key/value line of the input.
type Pair struct {
	K, V string
}

func (p Pair) Key() string {
	return p.K
}

func (p Pair) Value() string {
	return p.V
}
