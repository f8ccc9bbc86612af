package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corinthian/voiceattack-vap-builder/errs"
)

func TestCompressInflateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	random := make([]byte, 4096)
	rng.Read(random)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"single byte", []byte{0x42}},
		{"text", []byte("the quick brown fox jumps over the lazy dog")},
		{"repetitive", bytes.Repeat([]byte("abc"), 10000)},
		{"incompressible", random},
		{"binary with zero runs", append(bytes.Repeat([]byte{0x00}, 512), 0xFF, 0x01)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := Compress(tt.data)
			require.NoError(t, err)

			out, err := Inflate(compressed)
			require.NoError(t, err)
			require.Equal(t, tt.data, out)
		})
	}
}

func TestDecompressPassesXMLThrough(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"declaration", []byte(`<?xml version="1.0" encoding="utf-8"?><Profile/>`)},
		{"bare root element", []byte(`<Profile><Id/></Profile>`)},
		{"leading whitespace", []byte("\n  \t<Profile/>")},
		{"utf-8 bom", append([]byte{0xef, 0xbb, 0xbf}, []byte(`<?xml version="1.0"?><Profile/>`)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, IsXML(tt.data))

			out, err := Decompress(tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.data, out, "XML-form input must pass through unchanged")
		})
	}
}

func TestDecompressInflatesBinary(t *testing.T) {
	payload := []byte("binary document payload")

	compressed, err := Compress(payload)
	require.NoError(t, err)
	require.False(t, IsXML(compressed))

	out, err := Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestInflateCorruptStream(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02}},
		{"empty input", nil},
		{"truncated stream", func() []byte {
			c, _ := Compress(bytes.Repeat([]byte("data"), 1000))
			return c[:len(c)/2]
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Inflate(tt.data)
			require.ErrorIs(t, err, errs.ErrMalformedCompression)
			require.Nil(t, out, "no partial output on a corrupt stream")
		})
	}
}

func TestIsXMLRejectsNonXML(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		{},
		[]byte("plain text"),
		{0x78, 0x9c, 0x01},
		[]byte("<"),
		[]byte("<1tag/>"),
		[]byte("<!-- comment first -->"),
	} {
		require.False(t, IsXML(data), "%q", data)
	}
}
