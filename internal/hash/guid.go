// Package hash derives stable identifiers from content, so that repeated
// builds of the same manifest produce byte-identical output.
package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Salts separating the two halves of a derived identifier. Any two distinct
// values work; these stay fixed so derived identifiers are stable across
// releases.
const (
	saltHi = "vap:id:hi\x00"
	saltLo = "vap:id:lo\x00"
)

// GUID derives a stable 128-bit identifier from the given parts. Parts are
// hashed with length separation, so ("a", "bc") and ("ab", "c") derive
// different identifiers. The result carries RFC 4122 version-4 bits, making
// it indistinguishable in shape from the randomly generated identifiers
// used by default.
func GUID(parts ...string) uuid.UUID {
	hi := xxhash.New()
	lo := xxhash.New()

	_, _ = hi.WriteString(saltHi)
	_, _ = lo.WriteString(saltLo)

	var sep [1]byte
	for _, p := range parts {
		sep[0] = byte(len(p))
		_, _ = hi.WriteString(p)
		_, _ = hi.Write(sep[:])
		_, _ = lo.WriteString(p)
		_, _ = lo.Write(sep[:])
	}

	var id uuid.UUID
	putUint64(id[0:8], hi.Sum64())
	putUint64(id[8:16], lo.Sum64())

	// Version 4, RFC 4122 variant.
	id[6] = (id[6] & 0x0f) | 0x40
	id[8] = (id[8] & 0x3f) | 0x80

	return id
}

func putUint64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}
