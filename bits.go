package huffman

// bitWriter packs bits most-significant first into a growable byte slice.
// Unwritten bits of the final byte are zero, which is exactly the padding
// an encoded stream needs.
type bitWriter struct {
	buf []byte
	n   int
}

func newBitWriter(sizeHint int) *bitWriter {
	return &bitWriter{buf: make([]byte, 0, sizeHint)}
}

func (bw *bitWriter) writeBit(bit uint) {
	shift := uint(bw.n & 7)
	if shift == 0 {
		bw.buf = append(bw.buf, 0)
	}
	if bit&1 != 0 {
		bw.buf[len(bw.buf)-1] |= 0x80 >> shift
	}
	bw.n++
}

func (bw *bitWriter) writeCode(hc Code) {
	for i := byte(0); i < hc.Size; i++ {
		bw.writeBit(hc.Bit(i))
	}
}

// BitLen returns the number of bits written, not counting padding.
func (bw *bitWriter) BitLen() int {
	return bw.n
}

// Bytes returns the packed, zero-padded output.
func (bw *bitWriter) Bytes() []byte {
	return bw.buf
}

// bitReader reads bits most-significant first from a byte slice.
type bitReader struct {
	data []byte
	pos  int
}

// readBit returns the next bit, or ok == false once the data is exhausted.
func (br *bitReader) readBit() (bit uint, ok bool) {
	index := br.pos >> 3
	if index >= len(br.data) {
		return 0, false
	}
	shift := uint(br.pos & 7)
	br.pos++
	return uint(br.data[index]>>(7-shift)) & 1, true
}
