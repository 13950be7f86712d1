package huffman

import (
	"fmt"
)

// Encoder compresses messages with a CodeBook.
type Encoder struct {
	book CodeBook
}

// NewEncoder constructs an Encoder for the given code book.
func NewEncoder(book CodeBook) Encoder {
	return Encoder{book: book}
}

// Encode compresses message.  The output is the codeword of each symbol in
// order, then the Sentinel's codeword, then zero bits up to the next byte
// boundary, packed most significant bit first.
//
// If message holds a symbol missing from the code book, Encode returns an
// UnknownSymbolError whose Offset is a byte offset into message.
//
func (e Encoder) Encode(message string) ([]byte, error) {
	bw := newBitWriter(len(message)/2 + 1)
	err := forEachSymbol(message, func(offset int, sym Symbol) error {
		return e.writeSymbol(bw, offset, sym)
	})
	if err != nil {
		return nil, err
	}
	bw.writeCode(e.book.sentinel)
	return bw.Bytes(), nil
}

// EncodeSymbols is like Encode, but takes a message that is already split
// into symbols.  The Offset of an UnknownSymbolError is an index into
// message.
func (e Encoder) EncodeSymbols(message []Symbol) ([]byte, error) {
	bw := newBitWriter(len(message)/2 + 1)
	for index, sym := range message {
		if sym == Sentinel {
			return nil, fmt.Errorf("index %d: %w", index, ErrReservedSymbol)
		}
		if err := e.writeSymbol(bw, index, sym); err != nil {
			return nil, err
		}
	}
	bw.writeCode(e.book.sentinel)
	return bw.Bytes(), nil
}

// BitLen returns the number of bits Encode would produce for message,
// including the Sentinel's codeword but not the padding.
func (e Encoder) BitLen(message string) (int, error) {
	var n int
	err := forEachSymbol(message, func(offset int, sym Symbol) error {
		hc, found := e.book.codes[sym]
		if !found {
			return UnknownSymbolError{Symbol: sym, Offset: offset}
		}
		n += int(hc.Size)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n + int(e.book.sentinel.Size), nil
}

func (e Encoder) writeSymbol(bw *bitWriter, offset int, sym Symbol) error {
	hc, found := e.book.codes[sym]
	if !found {
		return UnknownSymbolError{Symbol: sym, Offset: offset}
	}
	bw.writeCode(hc)
	return nil
}
