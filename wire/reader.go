// Package wire implements the primitive binary layer of the VAP container:
// little-endian integers, IEEE-754 doubles, mixed-endian 16-byte identifiers,
// and length-prefixed UTF-8 strings.
//
// The package provides two complementary halves:
//
//   - Reader: a forward-only cursor over an immutable byte buffer. Every
//     multi-byte read validates the remaining length first and fails with
//     errs.ErrTruncatedBuffer (wrapped with the byte offset) rather than
//     panicking, because a single bad length makes every later offset in the
//     document unrecoverable.
//   - Writer: a growable output buffer appended in document order, with
//     reserve/patch support for offset tables whose values are only known
//     once the records behind them have been written.
//
// All integers are little-endian. Identifiers use the historical mixed-endian
// GUID layout; see guid.go.
package wire

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/corinthian/voiceattack-vap-builder/errs"
)

// MaxStringLen caps string length prefixes accepted by the Reader. Real
// profiles carry triggers, paths, and category labels that stay far below
// this; a prefix above it means the cursor is not positioned on a string.
const MaxStringLen = 16 << 20 // 16 MiB

// Reader is a forward-only cursor over an immutable byte buffer.
//
// The zero value is not usable; create instances with NewReader. A Reader
// never mutates or copies the underlying buffer, and returned byte slices
// alias it. Readers are not safe for concurrent use, but distinct Readers
// over distinct buffers are fully independent.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current byte offset from the start of the buffer.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.data)
}

// need fails with a truncation error when fewer than n bytes remain.
func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, %d remain",
			errs.ErrTruncatedBuffer, n, r.pos, r.Remaining())
	}

	return nil
}

// Uint32 reads a little-endian unsigned 32-bit integer.
func (r *Reader) Uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}

	v := le.Uint32(r.data[r.pos:])
	r.pos += 4

	return v, nil
}

// Uint16 reads a little-endian unsigned 16-bit integer.
func (r *Reader) Uint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}

	v := le.Uint16(r.data[r.pos:])
	r.pos += 2

	return v, nil
}

// Int32 reads a little-endian signed 32-bit integer.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()

	return int32(v), err
}

// Float64 reads a little-endian IEEE-754 double.
func (r *Reader) Float64() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}

	v := math.Float64frombits(le.Uint64(r.data[r.pos:]))
	r.pos += 8

	return v, nil
}

// GUID reads a 16-byte mixed-endian identifier and returns its canonical
// form.
func (r *Reader) GUID() (uuid.UUID, error) {
	if err := r.need(guidSize); err != nil {
		return uuid.Nil, err
	}

	id := decodeGUID(r.data[r.pos:])
	r.pos += guidSize

	return id, nil
}

// String reads a length-prefixed UTF-8 string: a 4-byte little-endian byte
// count followed by that many bytes, no terminator. The count is the UTF-8
// byte length, not the character count. An empty string is a zero count.
func (r *Reader) String() (string, error) {
	start := r.pos

	n, err := r.Uint32()
	if err != nil {
		return "", err
	}

	if n > MaxStringLen {
		return "", fmt.Errorf("%w: length prefix %d at offset %d", errs.ErrStringTooLong, n, start)
	}

	if err := r.need(int(n)); err != nil {
		return "", err
	}

	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)

	return s, nil
}

// Bytes reads exactly n bytes. The returned slice aliases the underlying
// buffer and must not be modified.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// Skip advances the cursor by n bytes without interpreting them.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}

	r.pos += n

	return nil
}

// PeekUint32 reads a little-endian uint32 without advancing the cursor.
func (r *Reader) PeekUint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}

	return le.Uint32(r.data[r.pos:]), nil
}
