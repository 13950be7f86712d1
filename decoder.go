package huffman

import (
	"strings"
)

// Decoder decompresses data with the Trie that produced its code book.
type Decoder struct {
	trie *Trie
}

// NewDecoder constructs a Decoder for the given trie.
func NewDecoder(t *Trie) Decoder {
	return Decoder{trie: t}
}

// Decode decompresses data produced by an Encoder for the same trie.
//
// Decoding stops at the first Sentinel codeword; any bits after it are
// ignored.  If the data runs out before a Sentinel is reached, Decode
// returns ErrTruncatedInput and no message.
//
func (d Decoder) Decode(data []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(data) * 2)
	err := d.decode(data, func(sym Symbol) {
		sb.WriteRune(rune(sym))
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// DecodeSymbols is like Decode, but returns the message as symbols.
func (d Decoder) DecodeSymbols(data []byte) ([]Symbol, error) {
	out := make([]Symbol, 0, len(data)*2)
	err := d.decode(data, func(sym Symbol) {
		out = append(out, sym)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (d Decoder) decode(data []byte, emit func(Symbol)) error {
	br := bitReader{data: data}
	root := d.trie.Root()
	for {
		sym, err := d.next(&br, root)
		if err != nil {
			return err
		}
		if sym == Sentinel {
			return nil
		}
		emit(sym)
	}
}

// next walks from the root to a leaf, one bit per branch.  A root that is
// itself a leaf consumes a single bit, matching its "0" codeword.
func (d Decoder) next(br *bitReader, root Symbol) (Symbol, error) {
	if !root.IsSynthetic() {
		if _, ok := br.readBit(); !ok {
			return InvalidSymbol, ErrTruncatedInput
		}
		return root, nil
	}

	node := root
	for node.IsSynthetic() {
		bit, ok := br.readBit()
		if !ok {
			return InvalidSymbol, ErrTruncatedInput
		}
		left, right, _ := d.trie.Children(node)
		if bit == 0 {
			node = left
		} else {
			node = right
		}
	}
	return node, nil
}
