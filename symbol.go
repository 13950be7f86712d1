package huffman

import (
	"math"
	"strconv"
	"unicode"
)

// Symbol represents a single Unicode code point in a message or corpus.
// Negative symbols are not valid; they are reserved for the synthetic
// symbols that label internal trie nodes.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Sentinel is the end-of-transmission symbol (ETB, U+0017).  Every code
// book contains it with a weight of 1, and every encoded stream ends with
// its codeword.  It may not appear in a corpus or message.
const Sentinel = Symbol(0x17)

// firstSyntheticSymbol labels the first internal node created while
// building a trie.  Later internal nodes count upward from here.
const firstSyntheticSymbol = Symbol(math.MinInt32)

// IsSynthetic returns true if this symbol labels an internal trie node.
func (sym Symbol) IsSynthetic() bool {
	return sym < 0 && sym != InvalidSymbol
}

// String returns a printable representation of this Symbol.
func (sym Symbol) String() string {
	switch {
	case sym == Sentinel:
		return "ETB"
	case sym == InvalidSymbol:
		return "<invalid>"
	case sym.IsSynthetic():
		return "#" + strconv.FormatInt(int64(sym)-math.MinInt32, 10)
	default:
		return strconv.QuoteRune(rune(sym))
	}
}
