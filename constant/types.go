package constant

import "math"

const (
	TermCode = 0    // end of key
	MaxCode  = 0xFF // largest code unit
)

const (
	EmptyCheck = int16(-1)
	BaseUnset  = int32(math.MinInt32)
)

const (
	MaxKeys    = math.MaxInt32
	MaxAddress = math.MaxInt32 - 1
)

const (
	AllocRatio = 2
	InitSpace  = 2 * (MaxCode + 1)
)

const (
	Magic = "datrie"
)
