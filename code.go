package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest codeword a Code can hold.
const maxBitsPerCode = 64

// Code represents a codeword: a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the low Size bits is the first bit, so a Code reads left to right
	// the way it is written to an encoded stream.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode constructs a Code from a string of '0' and '1' digits.
func ParseCode(digits string) (Code, error) {
	if len(digits) > maxBitsPerCode {
		return Code{}, fmt.Errorf("huffman: codeword %q longer than %d bits", digits, maxBitsPerCode)
	}
	var hc Code
	for _, ch := range digits {
		switch ch {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("huffman: invalid digit %q in codeword %q", ch, digits)
		}
	}
	return hc, nil
}

// Append returns this Code with one more bit added at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "codeword longer than %d bits", maxBitsPerCode)
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit&1)}
}

// Bit returns the i'th bit of this Code, counting from 0 at the first bit.
func (hc Code) Bit(i byte) uint {
	assert.Assertf(i < hc.Size, "bit index %d out of range for %d-bit code", i, hc.Size)
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// HasPrefix returns true if prefix is equal to the first prefix.Size bits
// of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Digits returns the bits of this Code as a string of '0' and '1'.
func (hc Code) Digits() string {
	if hc.Size == 0 {
		return ""
	}
	digits := strconv.FormatUint(hc.Bits, 2)
	if pad := int(hc.Size) - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return digits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}
