package wire

import "github.com/google/uuid"

// guidSize is the encoded size of an identifier.
const guidSize = 16

// Identifiers are stored in the historical mixed-endian GUID layout: the
// first three canonical fields are little-endian (a 4-byte block and two
// 2-byte blocks), the trailing 8 bytes are raw. Canonical form
// (uuid.UUID, hyphenated lowercase hex) keeps the fields big-endian, so
// encoding and decoding are the same byte swap. Applying it twice is the
// identity, so decode(encode(x)) == x holds for arbitrary byte patterns,
// not just well-formed UUIDs.

// encodeGUID converts a canonical identifier to its on-disk byte order.
func encodeGUID(id uuid.UUID) [guidSize]byte {
	var out [guidSize]byte
	swapGUID(&out, id[:])

	return out
}

// decodeGUID converts on-disk bytes (at least guidSize long) to the
// canonical identifier.
func decodeGUID(b []byte) uuid.UUID {
	var id uuid.UUID
	swapGUID((*[guidSize]byte)(id[:]), b)

	return id
}

// swapGUID applies the mixed-endian field reversal from src into dst.
func swapGUID(dst *[guidSize]byte, src []byte) {
	dst[0], dst[1], dst[2], dst[3] = src[3], src[2], src[1], src[0]
	dst[4], dst[5] = src[5], src[4]
	dst[6], dst[7] = src[7], src[6]
	copy(dst[8:], src[8:guidSize])
}

// EncodeGUID returns the 16-byte mixed-endian encoding of id. Exported for
// tests and for callers that frame identifiers outside a Writer.
func EncodeGUID(id uuid.UUID) [guidSize]byte {
	return encodeGUID(id)
}

// DecodeGUID returns the canonical identifier for the first 16 bytes of b.
// The caller guarantees len(b) >= 16; Reader.GUID performs the bounds check.
func DecodeGUID(b []byte) uuid.UUID {
	return decodeGUID(b)
}
