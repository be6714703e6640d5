package sum

import (
	"hash"
	"hash/crc32"
)

var table = crc32.MakeTable(crc32.Castagnoli)

func Sum(h hash.Hash32, data []byte) uint32 {
	h.Reset()
	h.Write(data)
	return h.Sum32()
}

// Checksum is the crc32c of data.
func Checksum(data []byte) uint32 {
	return Sum(crc32.New(table), data)
}
