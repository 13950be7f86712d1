package huffman

import (
	"fmt"

	"github.com/op/go-logging"
)

// Codec is a reusable Huffman code trained on one corpus.  It compresses
// messages whose symbols all occur in that corpus.
//
// A Codec is immutable after New returns, so Encode and Decode may be
// called from multiple goroutines at once.
type Codec struct {
	freq    FrequencyTable
	trie    *Trie
	book    CodeBook
	encoder Encoder
	decoder Decoder
	log     *logging.Logger
}

// New builds a Codec from the symbol frequencies of corpus.
//
// An empty corpus is permitted: the resulting code book holds only the
// Sentinel, with codeword "0", and can encode only the empty message.
//
func New(corpus string, opts ...Option) (*Codec, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	freq, err := CountFrequencies(corpus)
	if err != nil {
		return nil, fmt.Errorf("huffman: building codec: %w", err)
	}

	trie := BuildTrie(freq)
	book := NewCodeBook(trie)

	o.logger.Debugf("built codec: %d distinct symbols, %d total, codeword lengths %d..%d bits, sentinel %v",
		freq.Len(), freq.Total(), book.MinSize(), book.MaxSize(), book.Sentinel())

	return &Codec{
		freq:    freq,
		trie:    trie,
		book:    book,
		encoder: NewEncoder(book),
		decoder: NewDecoder(trie),
		log:     o.logger,
	}, nil
}

// Encode compresses message.  See Encoder.Encode.
func (c *Codec) Encode(message string) ([]byte, error) {
	data, err := c.encoder.Encode(message)
	if err != nil {
		c.log.Debugf("encode failed: %v", err)
		return nil, err
	}
	return data, nil
}

// Decode decompresses data.  See Decoder.Decode.
func (c *Codec) Decode(data []byte) (string, error) {
	message, err := c.decoder.Decode(data)
	if err != nil {
		c.log.Debugf("decode of %d bytes failed: %v", len(data), err)
		return "", err
	}
	return message, nil
}

// Frequencies returns the symbol counts of the construction corpus.  The
// caller must not modify the returned table.
func (c *Codec) Frequencies() FrequencyTable {
	return c.freq
}

// Trie returns the Huffman trie.
func (c *Codec) Trie() *Trie {
	return c.trie
}

// CodeBook returns the code book.
func (c *Codec) CodeBook() CodeBook {
	return c.book
}

// Encoder returns the Encoder used by Encode.
func (c *Codec) Encoder() Encoder {
	return c.encoder
}

// Decoder returns the Decoder used by Decode.
func (c *Codec) Decoder() Decoder {
	return c.decoder
}
