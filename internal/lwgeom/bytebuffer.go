package lwgeom

// inlineCapacity mirrors original_source/liblwgeom/bytebuffer.c's
// static_buf[1024] small-size optimization: buffers requested below this
// threshold are backed by an array embedded in the ByteBuffer value itself,
// avoiding a heap allocation for the common small-geometry case.
const inlineCapacity = 1024

// ByteBuffer is a growable write buffer with a read cursor, used by the
// TWKB encoder/decoder and anywhere spec.md §4.C3 calls for an
// append-and-scan byte buffer. Unlike bytes.Buffer, it exposes zig-zag
// varint append operations directly.
type ByteBuffer struct {
	inline [inlineCapacity]byte
	buf    []byte // active storage; aliases inline[:0:cap] until it grows past it
	read   int    // read cursor, advanced by the Read* methods
}

// NewByteBuffer returns a buffer whose initial storage is the inline array
// when requestedSize fits, or a heap slice otherwise.
func NewByteBuffer(requestedSize int) *ByteBuffer {
	bb := &ByteBuffer{}
	if requestedSize <= inlineCapacity {
		bb.buf = bb.inline[:0]
	} else {
		bb.buf = make([]byte, 0, requestedSize)
	}
	return bb
}

// AppendByte appends a single byte.
func (bb *ByteBuffer) AppendByte(b byte) {
	bb.buf = append(bb.buf, b)
}

// AppendBytes appends a raw byte slice.
func (bb *ByteBuffer) AppendBytes(p []byte) {
	bb.buf = append(bb.buf, p...)
}

// AppendVarintS64 appends the zig-zag signed varint encoding of n.
func (bb *ByteBuffer) AppendVarintS64(n int64) int {
	var written int
	bb.buf, written = AppendVarint(bb.buf, n)
	return written
}

// AppendVarintU64 appends the unsigned varint encoding of u.
func (bb *ByteBuffer) AppendVarintU64(u uint64) int {
	var written int
	bb.buf, written = AppendUvarint(bb.buf, u)
	return written
}

// AppendByteBuffer concatenates another buffer's written bytes.
func (bb *ByteBuffer) AppendByteBuffer(other *ByteBuffer) {
	bb.buf = append(bb.buf, other.Bytes()...)
}

// Length returns the number of bytes written so far.
func (bb *ByteBuffer) Length() int {
	return len(bb.buf)
}

// Bytes returns a view of the written range. The caller must not retain it
// across further appends that might outgrow the inline array.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.buf
}

// BytesCopy returns a copy of the written range (the varlena-style
// "get_buffer" operation in spec.md §4.C3, minus the length-prefix header
// which callers that need it — the serialized form, §4.C9 — prepend
// themselves).
func (bb *ByteBuffer) BytesCopy() []byte {
	out := make([]byte, len(bb.buf))
	copy(out, bb.buf)
	return out
}

// Reset rewinds both the write and read cursors without releasing storage.
func (bb *ByteBuffer) Reset() {
	bb.buf = bb.buf[:0]
	bb.read = 0
}

// SetReadBuffer installs p as the buffer to read from, resetting the read
// cursor. Used by decoders that wrap an existing byte slice rather than
// writing into a fresh buffer.
func (bb *ByteBuffer) SetReadBuffer(p []byte) {
	bb.buf = p
	bb.read = 0
}

// ReadByte consumes and returns the next byte.
func (bb *ByteBuffer) ReadByte() (byte, error) {
	if bb.read >= len(bb.buf) {
		return 0, &ErrMalformedInput{Reason: "read past end of buffer"}
	}
	b := bb.buf[bb.read]
	bb.read++
	return b, nil
}

// ReadBytes consumes and returns the next n bytes.
func (bb *ByteBuffer) ReadBytes(n int) ([]byte, error) {
	if bb.read+n > len(bb.buf) {
		return nil, &ErrMalformedInput{Reason: "read past end of buffer"}
	}
	p := bb.buf[bb.read : bb.read+n]
	bb.read += n
	return p, nil
}

// ReadVarintU64 consumes an unsigned varint.
func (bb *ByteBuffer) ReadVarintU64() (uint64, error) {
	u, n, err := DecodeUvarint(bb.buf[bb.read:])
	if err != nil {
		return 0, err
	}
	bb.read += n
	return u, nil
}

// ReadVarintS64 consumes a zig-zag signed varint.
func (bb *ByteBuffer) ReadVarintS64() (int64, error) {
	v, n, err := DecodeVarint(bb.buf[bb.read:])
	if err != nil {
		return 0, err
	}
	bb.read += n
	return v, nil
}

// Remaining returns the number of unread bytes.
func (bb *ByteBuffer) Remaining() int {
	return len(bb.buf) - bb.read
}

// ReadCursor returns the current read offset.
func (bb *ByteBuffer) ReadCursor() int {
	return bb.read
}
