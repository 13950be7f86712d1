// Package huffman implements a reusable Huffman codec trained on a reference
// corpus.
//
// New counts the code points of the corpus, builds a Huffman trie from those
// counts plus a reserved end-of-transmission symbol (Sentinel), and derives
// a code book from the trie.  Encode writes each symbol's codeword followed
// by the Sentinel's codeword, zero-padded to a whole number of bytes; Decode
// walks the trie bit by bit until it reaches the Sentinel.
//
// Trie construction is deterministic: nodes merge lowest weight first, with
// ties broken as documented on BuildTrie.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
