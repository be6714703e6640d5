package errmsg

import "errors"

var (
	NotExist        = errors.New("not exist")
	OutOfRange      = errors.New("out of range")
	OutOfSpace      = errors.New("out of space")
	OutOfOrder      = errors.New("out of order")
	KeyHasTermCode  = errors.New("key contains terminal code")
	TooManyKeys     = errors.New("too many keys")
	BadMagic        = errors.New("bad magic")
	BadChecksum     = errors.New("bad checksum")
	Corrupted       = errors.New("corrupted")
	BadLine         = errors.New("bad line")
	UnknownEncoding = errors.New("unknown encoding")
	ReadFailed      = errors.New("read failed")
	WriteFailed     = errors.New("write failed")
)
