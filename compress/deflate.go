// Package compress implements the container's compression layer.
//
// VAP files ship in two forms: a raw deflate stream (RFC 1951, no zlib or
// gzip envelope) wrapping the binary document, or the plain-text XML form.
// The package detects which form an input is in, inflates the former, and
// passes the latter through unchanged. There is exactly one algorithm; the
// host application accepts nothing else.
//
// Compression failures are fatal for the file: a corrupt stream yields
// errs.ErrMalformedCompression and no partial output, because every offset
// in the decompressed document depends on the bytes before it.
package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/corinthian/voiceattack-vap-builder/errs"
)

// utf8BOM is tolerated (and preserved) in front of XML-form documents.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// IsXML reports whether data begins with an XML declaration or a root
// element, after skipping a UTF-8 byte order mark and leading whitespace.
//
// A raw deflate stream can in principle begin with the same bytes; callers
// that already know the payload is binary should call Inflate directly.
func IsXML(data []byte) bool {
	b := bytes.TrimPrefix(data, utf8BOM)
	b = bytes.TrimLeft(b, " \t\r\n")

	if len(b) < 2 || b[0] != '<' {
		return false
	}

	c := b[1]

	return c == '?' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Decompress returns the decoded payload for either file form: XML-form
// input is returned unchanged, anything else is treated as a raw deflate
// stream and inflated.
func Decompress(data []byte) ([]byte, error) {
	if IsXML(data) {
		return data, nil
	}

	return Inflate(data)
}

// Inflate decodes a raw deflate stream. Abnormal termination (corrupt or
// truncated stream) fails with errs.ErrMalformedCompression.
func Inflate(data []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()

	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedCompression, err)
	}

	return out, nil
}

// Compress encodes data as a raw deflate stream with no header or trailer,
// the convention the host application uses for binary-form files.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("create deflate writer: %w", err)
	}

	if _, err := fw.Write(data); err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}

	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("finish deflate stream: %w", err)
	}

	return buf.Bytes(), nil
}
