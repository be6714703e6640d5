package data

// Builder collects one value per identifier, in identifier order.
type Builder interface {
	Len() int
	Append(int, string) error
	Arena() *Arena
}

// Arena stores the value of identifier i at buf[begins[i]:begins[i]+lengths[i]].
type Arena struct {
	buf     []byte
	begins  []int32
	lengths []int32
}

type builder struct {
	a *Arena
}
