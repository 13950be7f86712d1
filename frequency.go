package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"
)

// FrequencyTable maps each distinct Symbol of a corpus to the number of
// times it occurs.
type FrequencyTable map[Symbol]uint64

// CountFrequencies tallies the symbols of corpus.  An empty corpus yields an
// empty table.
func CountFrequencies(corpus string) (FrequencyTable, error) {
	freq := make(FrequencyTable)
	err := forEachSymbol(corpus, func(_ int, sym Symbol) error {
		freq[sym]++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("counting corpus symbols: %w", err)
	}
	return freq, nil
}

// Len returns the number of distinct symbols.
func (freq FrequencyTable) Len() int {
	return len(freq)
}

// Count returns the number of occurrences of sym.
func (freq FrequencyTable) Count(sym Symbol) uint64 {
	return freq[sym]
}

// Total returns the sum of all counts.
func (freq FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range freq {
		total += count
	}
	return total
}

// Symbols returns the distinct symbols in ascending code point order.
func (freq FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freq))
	for sym := range freq {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (freq FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, sym := range freq.Symbols() {
		fmt.Fprintf(&buf, "\t%v: %d\n", sym, freq[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// forEachSymbol calls fn with the byte offset and Symbol of each code point
// in s, stopping at the first error.
func forEachSymbol(s string, fn func(offset int, sym Symbol) error) error {
	for offset, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[offset:]); size <= 1 {
				return fmt.Errorf("byte offset %d: %w", offset, ErrInvalidUTF8)
			}
		}
		sym := Symbol(r)
		if sym == Sentinel {
			return fmt.Errorf("byte offset %d: %w", offset, ErrReservedSymbol)
		}
		if err := fn(offset, sym); err != nil {
			return err
		}
	}
	return nil
}
