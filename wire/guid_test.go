package wire

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGUID_KnownVector(t *testing.T) {
	raw := []byte{
		0x00, 0x01, 0x02, 0x03,
		0x04, 0x05,
		0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}

	id := DecodeGUID(raw)
	require.Equal(t, "03020100-0504-0706-0809-0a0b0c0d0e0f", id.String())

	enc := EncodeGUID(id)
	require.Equal(t, raw, enc[:])
}

func TestGUID_CanonicalString(t *testing.T) {
	id := uuid.MustParse("12345678-9abc-def0-1234-56789abcdef0")

	enc := EncodeGUID(id)
	want := []byte{
		0x78, 0x56, 0x34, 0x12,
		0xbc, 0x9a,
		0xf0, 0xde,
		0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0,
	}
	require.Equal(t, want, enc[:])

	require.Equal(t, id, DecodeGUID(enc[:]))
}

func TestGUID_RoundTripBytes(t *testing.T) {
	// encode(decode(b)) == b must hold for every 16-byte input, including
	// patterns that are not well-formed UUIDs.
	cases := [][]byte{
		bytes.Repeat([]byte{0x00}, 16),
		bytes.Repeat([]byte{0xff}, 16),
		{0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb},
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 64; i++ {
		b := make([]byte, 16)
		rng.Read(b)
		cases = append(cases, b)
	}

	for _, b := range cases {
		enc := EncodeGUID(DecodeGUID(b))
		require.Equal(t, b, enc[:])
	}
}

func TestGUID_RoundTripCanonical(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 64; i++ {
		var id uuid.UUID
		rng.Read(id[:])

		enc := EncodeGUID(id)
		require.Equal(t, id, DecodeGUID(enc[:]))
	}
}

func TestGUID_NilIsAllZero(t *testing.T) {
	enc := EncodeGUID(uuid.Nil)
	require.Equal(t, bytes.Repeat([]byte{0x00}, 16), enc[:])
}
