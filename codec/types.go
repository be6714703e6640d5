package codec

// Encoder appends little-endian fields to a buffer.
type Encoder struct {
	buf []byte
}

// Decoder reads fields written by Encoder. The first failure sticks: later
// reads return zero values and Err reports errmsg.Corrupted.
type Decoder struct {
	buf []byte
	err error
}
