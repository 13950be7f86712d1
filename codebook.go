package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CodeBook maps each natural symbol to its codeword.  The Sentinel's
// codeword is held separately and is not returned by Lookup.
type CodeBook struct {
	codes    map[Symbol]Code
	sentinel Code
	minSize  byte
	maxSize  byte
}

// NewCodeBook derives the code book for a trie by walking it once: a left
// branch appends 0 and a right branch appends 1.
func NewCodeBook(t *Trie) CodeBook {
	cb := CodeBook{codes: make(map[Symbol]Code, t.Len()-1)}
	var hasMinMax bool
	t.walk(func(sym Symbol, path Code) {
		if sym == Sentinel {
			cb.sentinel = path
		} else {
			cb.codes[sym] = path
		}

		size := path.Size
		if !hasMinMax {
			hasMinMax = true
			cb.minSize = size
			cb.maxSize = size
		} else if cb.minSize > size {
			cb.minSize = size
		} else if cb.maxSize < size {
			cb.maxSize = size
		}
	})
	return cb
}

// Lookup returns the codeword for sym.
func (cb CodeBook) Lookup(sym Symbol) (Code, bool) {
	hc, found := cb.codes[sym]
	return hc, found
}

// Sentinel returns the end-of-transmission codeword.
func (cb CodeBook) Sentinel() Code {
	return cb.sentinel
}

// Len returns the number of natural symbols, not counting the Sentinel.
func (cb CodeBook) Len() int {
	return len(cb.codes)
}

// MinSize is the bit length of the shortest codeword.
func (cb CodeBook) MinSize() byte {
	return cb.minSize
}

// MaxSize is the bit length of the longest codeword.
func (cb CodeBook) MaxSize() byte {
	return cb.maxSize
}

// Symbols returns the natural symbols in ascending code point order.
func (cb CodeBook) Symbols() []Symbol {
	out := make([]Symbol, 0, len(cb.codes))
	for sym := range cb.codes {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Dump writes a programmer-readable debugging dump of the code book to the
// given writer.
func (cb CodeBook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeBook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.maxSize)
	fmt.Fprintf(&buf, "\tSentinel() = %s\n", cb.sentinel)
	for _, sym := range cb.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%v) = %s\n", sym, cb.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type codeBookJSON struct {
	Codes    map[string]string `json:"codes"`
	Sentinel string            `json:"sentinel"`
}

// MarshalJSON renders the code book as an object mapping each symbol to
// its codeword digits.  It is an inspection aid; a code book is always
// rebuilt from its corpus and cannot be loaded back from JSON.
func (cb CodeBook) MarshalJSON() ([]byte, error) {
	out := codeBookJSON{
		Codes:    make(map[string]string, len(cb.codes)),
		Sentinel: cb.sentinel.Digits(),
	}
	for sym, hc := range cb.codes {
		out.Codes[string(rune(sym))] = hc.Digits()
	}
	return json.Marshal(out)
}
