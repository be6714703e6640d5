package darray

import "github.com/infinivision/datrie/constant"

// encodeID maps an identifier to its Base encoding and back; it is its own
// inverse. No other code looks at the sign of a Base value.
func encodeID(v int32) int32 {
	return -v - 1
}

func isLeaf(v int32) bool {
	return v < 0 && v != constant.BaseUnset
}

func isInner(v int32) bool {
	return v >= 0
}
