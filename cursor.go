package respb

import "encoding/binary"

// cursor walks a borrowed byte buffer while decoding a single frame's payload. It
// never copies bytes; every multi-byte read is borrowed from buf. A cursor never
// mutates buf and never advances pos on a short read — callers must check the
// returned error and, on ErrIncomplete, discard the cursor and retry once more
// bytes are available.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) require(n int) error {
	if c.remaining() < n {
		return ErrIncomplete
	}
	return nil
}

func (c *cursor) u8() (byte, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

func (c *cursor) u16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *cursor) u64() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}

// bytes borrows the next n bytes from the buffer and advances pos.
func (c *cursor) bytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	v := c.buf[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return v, nil
}

// shortString reads a 2-byte big-endian length prefix followed by that many bytes.
func (c *cursor) shortString() ([]byte, error) {
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	return c.bytes(int(n))
}

// longString reads a 4-byte big-endian length prefix followed by that many bytes,
// rejecting declared lengths above max.
func (c *cursor) longString(max uint32) ([]byte, error) {
	n, err := c.u32()
	if err != nil {
		return nil, err
	}
	if n > max {
		return nil, &OversizedStringError{Length: n, Max: max}
	}
	return c.bytes(int(n))
}

// builder is the Frame Writer's output-side counterpart to cursor. It writes into
// a caller-supplied buffer with explicit capacity checks, never growing the slice.
type builder struct {
	buf []byte
	pos int
}

func (b *builder) require(n int) error {
	if len(b.buf)-b.pos < n {
		return ErrInsufficientCapacity
	}
	return nil
}

func (b *builder) putU8(v byte) error {
	if err := b.require(1); err != nil {
		return err
	}
	b.buf[b.pos] = v
	b.pos++
	return nil
}

func (b *builder) putU16(v uint16) error {
	if err := b.require(2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b.buf[b.pos:], v)
	b.pos += 2
	return nil
}

func (b *builder) putU32(v uint32) error {
	if err := b.require(4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b.buf[b.pos:], v)
	b.pos += 4
	return nil
}

func (b *builder) putU64(v uint64) error {
	if err := b.require(8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b.buf[b.pos:], v)
	b.pos += 8
	return nil
}

func (b *builder) putBytes(p []byte) error {
	if err := b.require(len(p)); err != nil {
		return err
	}
	copy(b.buf[b.pos:], p)
	b.pos += len(p)
	return nil
}

func (b *builder) putShortString(s []byte) error {
	if err := b.putU16(uint16(len(s))); err != nil {
		return err
	}
	return b.putBytes(s)
}

func (b *builder) putLongString(s []byte) error {
	if err := b.putU32(uint32(len(s))); err != nil {
		return err
	}
	return b.putBytes(s)
}

// argSeq walks a ParsedCommand's Args in order as a grammar writer reconstructs a
// frame; it panics on underrun, which indicates a ParsedCommand whose Args don't
// match the shape its Opcode's grammar expects (a caller bug, not a wire error).
type argSeq struct {
	args [][]byte
	i    int
}

func (a *argSeq) next() []byte {
	v := a.args[a.i]
	a.i++
	return v
}

func (a *argSeq) remaining() int {
	return len(a.args) - a.i
}

// opaqueSeq walks a ParsedCommand's Opaque slices in the same order the reader
// produced them.
type opaqueSeq struct {
	chunks [][]byte
	i      int
}

func (o *opaqueSeq) next() []byte {
	if o.i >= len(o.chunks) {
		return nil
	}
	v := o.chunks[o.i]
	o.i++
	return v
}
