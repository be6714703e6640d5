package disk

const (
	SumSize    = 4
	RecordSize = 4
	HeaderSize = SumSize + RecordSize
)

// A snapshot file is constant.Magic followed by records, each framed as
// crc32c(payload) | len(payload) | payload, little-endian.
