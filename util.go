package huffman

import (
	mathbits "math/bits"
)

func log2uint64(x uint64) int {
	if x == 0 {
		x = 1
	}
	return 64 - mathbits.LeadingZeros64(x)
}
