package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol is matched by errors returned when a message holds a
	// symbol that did not occur in the construction corpus.
	ErrUnknownSymbol = errors.New("huffman: symbol not present in code book")

	// ErrTruncatedInput is returned when encoded data runs out of bits
	// before the end-of-transmission codeword is reached.
	ErrTruncatedInput = errors.New("huffman: truncated input")

	// ErrInvalidUTF8 is returned when a corpus or message is not valid
	// UTF-8 and so cannot be split into symbols.
	ErrInvalidUTF8 = errors.New("huffman: invalid UTF-8")

	// ErrReservedSymbol is returned when a corpus or message contains the
	// Sentinel code point.
	ErrReservedSymbol = errors.New("huffman: reserved end-of-transmission symbol in input")
)

// UnknownSymbolError describes a symbol that Encode could not find in the
// code book.
type UnknownSymbolError struct {
	Symbol Symbol

	// Offset locates Symbol in the message: a byte offset for
	// Encoder.Encode, an index for Encoder.EncodeSymbols.
	Offset int
}

// Error fulfills the error interface.
func (err UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: symbol %v at offset %d not present in code book", err.Symbol, err.Offset)
}

// Is returns true for ErrUnknownSymbol.
func (err UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

var _ error = UnknownSymbolError{}
