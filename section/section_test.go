package section

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/corinthian/voiceattack-vap-builder/errs"
	"github.com/corinthian/voiceattack-vap-builder/wire"
)

func TestFileHeaderRoundTrip(t *testing.T) {
	w := wire.NewWriter()
	totalPos, offsetPos := AppendFileHeader(w, 3)

	require.Equal(t, 8+3*4, w.Len())

	w.PatchUint32(totalPos, 1234)
	for i, pos := range offsetPos {
		w.PatchUint32(pos, uint32(100*(i+1)))
	}

	h, err := ReadFileHeader(wire.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.Equal(t, uint32(1234), h.TotalSize)
	require.Equal(t, 3, h.ItemCount())
	require.Equal(t, []uint32{100, 200, 300}, h.ItemOffsets)
	require.Equal(t, w.Len(), h.Size())
}

func TestFileHeaderCursorPosition(t *testing.T) {
	// A header declaring totalSize 164274 and 89 items is 8 + 89*4 = 364
	// bytes long; the metadata section must begin exactly there.
	w := wire.NewWriter()
	w.AppendUint32(164274)
	w.AppendUint32(89)
	for i := 0; i < 89; i++ {
		w.AppendUint32(uint32(400 + i))
	}
	w.AppendGUID(uuid.Nil) // first metadata bytes

	r := wire.NewReader(w.Bytes())
	h, err := ReadFileHeader(r)
	require.NoError(t, err)
	require.Equal(t, uint32(164274), h.TotalSize)
	require.Equal(t, 89, h.ItemCount())
	require.Equal(t, 364, r.Pos())
	require.Equal(t, 364, h.Size())
}

func TestFileHeaderErrors(t *testing.T) {
	t.Run("truncated count", func(t *testing.T) {
		_, err := ReadFileHeader(wire.NewReader([]byte{1, 2, 3, 4, 5}))
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})

	t.Run("truncated offset table", func(t *testing.T) {
		w := wire.NewWriter()
		w.AppendUint32(100)
		w.AppendUint32(5) // declares 5 offsets, provides none
		_, err := ReadFileHeader(wire.NewReader(w.Bytes()))
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})

	t.Run("absurd item count", func(t *testing.T) {
		w := wire.NewWriter()
		w.AppendUint32(100)
		w.AppendUint32(0xFFFFFFFF)
		_, err := ReadFileHeader(wire.NewReader(w.Bytes()))
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
	})
}

func TestMetadataRoundTrip(t *testing.T) {
	id := uuid.MustParse("12345678-9abc-def0-1234-56789abcdef0")

	w := wire.NewWriter()
	offsetPos, err := AppendMetadata(w, id, "Flight Profile", 2)
	require.NoError(t, err)

	w.PatchUint32(offsetPos[0], 500)
	w.PatchUint32(offsetPos[1], 900)

	m, err := ReadMetadata(wire.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.Equal(t, id, m.ID)
	require.Equal(t, "Flight Profile", m.Name)
	require.Equal(t, 2, m.CommandCount())
	require.Equal(t, []uint32{500, 900}, m.CommandOffsets)
}

func TestMetadataTruncatedName(t *testing.T) {
	w := wire.NewWriter()
	w.AppendGUID(uuid.New())
	w.AppendUint32(50) // name length past end of buffer

	_, err := ReadMetadata(wire.NewReader(w.Bytes()))
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
}
