package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corinthian/voiceattack-vap-builder/errs"
)

func TestReader_Integers(t *testing.T) {
	r := NewReader([]byte{
		0x01, 0x00, 0x00, 0x00, // uint32 1
		0x41, 0x00, // uint16 0x41
		0xff, 0xff, 0xff, 0xff, // int32 -1
	})

	u32, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(1), u32)
	require.Equal(t, 4, r.Pos())

	u16, err := r.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x41), u16)

	i32, err := r.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(-1), i32)

	require.Equal(t, 0, r.Remaining())
}

func TestReader_Float64(t *testing.T) {
	w := NewWriter()
	w.AppendFloat64(0.1)
	w.AppendFloat64(5)

	r := NewReader(w.Bytes())

	v, err := r.Float64()
	require.NoError(t, err)
	require.Equal(t, 0.1, v)

	v, err = r.Float64()
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

func TestReader_Truncation(t *testing.T) {
	t.Run("uint32 short", func(t *testing.T) {
		r := NewReader([]byte{0x01, 0x02})
		_, err := r.Uint32()
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})

	t.Run("guid short", func(t *testing.T) {
		r := NewReader(make([]byte, 15))
		_, err := r.GUID()
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})

	t.Run("error reports offset", func(t *testing.T) {
		r := NewReader(make([]byte, 6))
		_, err := r.Uint32()
		require.NoError(t, err)
		_, err = r.Uint32()
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
		require.Contains(t, err.Error(), "offset 4")
	})
}

func TestReader_String(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ascii", "press alpha"},
		{"markup", "[press;] alpha"},
		{"multibyte", "café ≥ 100 μs"},
		{"cjk", "音声コマンド"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriter()
			require.NoError(t, w.AppendString(tc.in))

			r := NewReader(w.Bytes())
			got, err := r.String()
			require.NoError(t, err)
			require.Equal(t, tc.in, got)
			require.Equal(t, 0, r.Remaining())
		})
	}
}

func TestReader_StringLengthIsByteCount(t *testing.T) {
	// The prefix counts UTF-8 bytes, not runes.
	w := NewWriter()
	require.NoError(t, w.AppendString("é")) // 2 bytes, 1 rune

	r := NewReader(w.Bytes())
	n, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(2), n)
}

func TestReader_StringTruncated(t *testing.T) {
	// Declared length runs past the end of the buffer.
	w := NewWriter()
	w.AppendUint32(64)
	w.AppendBytes([]byte("short"))

	r := NewReader(w.Bytes())
	_, err := r.String()
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
}

func TestReader_StringOverLimit(t *testing.T) {
	w := NewWriter()
	w.AppendUint32(MaxStringLen + 1)

	r := NewReader(w.Bytes())
	_, err := r.String()
	require.ErrorIs(t, err, errs.ErrStringTooLong)
}

func TestReader_SkipAndPeek(t *testing.T) {
	r := NewReader([]byte{0xaa, 0xbb, 0x02, 0x00, 0x00, 0x00})

	require.NoError(t, r.Skip(2))

	v, err := r.PeekUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(2), v)
	require.Equal(t, 2, r.Pos()) // peek does not advance

	require.ErrorIs(t, r.Skip(8), errs.ErrTruncatedBuffer)
}

func TestWriter_ReservePatch(t *testing.T) {
	w := NewWriter()
	w.AppendUint32(7)
	pos := w.ReserveUint32()
	require.NoError(t, w.AppendString("body"))
	w.PatchUint32(pos, uint32(w.Len()))

	r := NewReader(w.Bytes())

	v, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(7), v)

	patched, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(w.Len()), patched)
}

func TestWriter_AppendFill(t *testing.T) {
	w := NewWriter()
	w.AppendFill(0xff, 3)
	w.AppendFill(0x00, 2)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0x00, 0x00}, w.Bytes())
}

func TestWriter_StringTooLong(t *testing.T) {
	w := NewWriter()
	err := w.AppendString(strings.Repeat("x", MaxStringLen+1))
	require.ErrorIs(t, err, errs.ErrStringTooLong)
}
