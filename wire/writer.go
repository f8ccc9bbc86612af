package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/corinthian/voiceattack-vap-builder/errs"
)

// le is the byte order of every integer field in the container.
var le = binary.LittleEndian

// Writer accumulates a binary document in append order.
//
// Offset tables precede the records they describe, so their values are not
// known at append time; Reserve leaves a 4-byte hole and PatchUint32 fills
// it once the document layout is final. Writers are not safe for concurrent
// use; each encode call should own its Writer.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with capacity for a typical profile document.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 4096)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated document. The slice aliases the Writer's
// buffer; callers must not keep writing through w while holding it.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// AppendUint32 appends a little-endian unsigned 32-bit integer.
func (w *Writer) AppendUint32(v uint32) {
	w.buf = le.AppendUint32(w.buf, v)
}

// AppendUint16 appends a little-endian unsigned 16-bit integer.
func (w *Writer) AppendUint16(v uint16) {
	w.buf = le.AppendUint16(w.buf, v)
}

// AppendInt32 appends a little-endian signed 32-bit integer.
func (w *Writer) AppendInt32(v int32) {
	w.buf = le.AppendUint32(w.buf, uint32(v))
}

// AppendFloat64 appends a little-endian IEEE-754 double.
func (w *Writer) AppendFloat64(v float64) {
	w.buf = le.AppendUint64(w.buf, math.Float64bits(v))
}

// AppendGUID appends the 16-byte mixed-endian encoding of id.
func (w *Writer) AppendGUID(id uuid.UUID) {
	g := encodeGUID(id)
	w.buf = append(w.buf, g[:]...)
}

// AppendString appends a length-prefixed UTF-8 string: 4-byte little-endian
// byte count, then the bytes. Strings above MaxStringLen are refused so the
// document stays decodable by this package's own Reader.
func (w *Writer) AppendString(s string) error {
	if len(s) > MaxStringLen {
		return fmt.Errorf("%w: %d bytes", errs.ErrStringTooLong, len(s))
	}

	w.AppendUint32(uint32(len(s)))
	w.buf = append(w.buf, s...)

	return nil
}

// AppendBytes appends raw bytes verbatim.
func (w *Writer) AppendBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// AppendFill appends n copies of b. Used for the format's zero padding and
// 0xFF sentinel runs.
func (w *Writer) AppendFill(b byte, n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, b)
	}
}

// ReserveUint32 appends a 4-byte placeholder and returns its position for a
// later PatchUint32. Offset tables are written this way: reserve while
// laying out the header, patch when the records land.
func (w *Writer) ReserveUint32() int {
	pos := len(w.buf)
	w.AppendUint32(0)

	return pos
}

// PatchUint32 overwrites the 4 bytes at pos with v. pos must come from
// ReserveUint32 (or otherwise reference an existing uint32 field); patching
// past the end panics, since that is a programming error in the encoder,
// not a data error.
func (w *Writer) PatchUint32(pos int, v uint32) {
	if pos < 0 || pos+4 > len(w.buf) {
		panic(fmt.Sprintf("wire: patch at %d outside buffer of %d bytes", pos, len(w.buf)))
	}

	le.PutUint32(w.buf[pos:], v)
}
