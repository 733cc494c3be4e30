package gatt

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	guuid "github.com/google/uuid"
	"github.com/juju/errors"
)

// baseUUID is the Bluetooth Base UUID,
// 00000000-0000-1000-8000-00805F9B34FB, in little-endian byte order.
// Short 16-bit and 32-bit UUIDs occupy bytes 12-15 of it.
var baseUUID = []byte{
	0xFB, 0x34, 0x9B, 0x5F, 0x80, 0x00, 0x00, 0x80,
	0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// A UUID identifies a service, characteristic, descriptor, or attribute
// type. BLE UUIDs are 2, 4, or 16 bytes long; the bytes are stored in
// little-endian (wire) order.
type UUID struct {
	b []byte
}

// UUID16 converts a 16-bit Bluetooth SIG-assigned number,
// such as 0x1800, to a UUID.
func UUID16(i uint16) UUID {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, i)
	return UUID{b}
}

// UUID32 converts a 32-bit Bluetooth SIG-assigned number to a UUID.
func UUID32(i uint32) UUID {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, i)
	return UUID{b}
}

// ParseUUID parses a UUID string. Short UUIDs are hex strings of 4 or 8
// digits, such as "180d"; full UUIDs use the canonical form, such as
// "34da3ad1-7110-41a1-b1ef-4430f509cde7".
func ParseUUID(s string) (UUID, error) {
	switch len(s) {
	case 4, 8:
		b, err := hex.DecodeString(s)
		if err != nil {
			return UUID{}, errors.NotValidf("uuid %q", s)
		}
		return UUID{reverse(b)}, nil
	}
	u, err := guuid.Parse(s)
	if err != nil {
		return UUID{}, errors.NotValidf("uuid %q", s)
	}
	return UUID{reverse(u[:])}, nil
}

// MustParseUUID parses a UUID string, like ParseUUID,
// but panics in case of error.
func MustParseUUID(s string) UUID {
	u, err := ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Len returns the length of the UUID in bytes: 2, 4, or 16.
func (u UUID) Len() int { return len(u.b) }

// String hex-encodes a UUID in its canonical big-endian order.
func (u UUID) String() string { return fmt.Sprintf("%X", reverse(u.b)) }

// Expand returns the full 128-bit form of u. Short UUIDs are placed
// into the Bluetooth Base UUID; full UUIDs are returned as-is.
func (u UUID) Expand() UUID {
	if len(u.b) == 16 {
		return u
	}
	b := make([]byte, 16)
	copy(b, baseUUID)
	copy(b[12:], u.b)
	return UUID{b}
}

// ShortForm returns the 16-bit value of u and true if u is, after
// normalization, representable as a 16-bit short UUID.
func (u UUID) ShortForm() (uint16, bool) {
	b := u.Expand().b
	if !bytes.Equal(b[:12], baseUUID[:12]) || b[14] != 0 || b[15] != 0 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b[12:14]), true
}

// Equal reports whether u and v identify the same UUID.
// A short UUID equals its expanded 128-bit form.
func (u UUID) Equal(v UUID) bool {
	if len(u.b) == len(v.b) {
		return bytes.Equal(u.b, v.b)
	}
	return bytes.Equal(u.Expand().b, v.Expand().b)
}

// wireBytes returns the UUID encoded for an attribute value: the 2-byte
// short form when representable, otherwise the full 128-bit form.
// Declaration values admit no 32-bit encoding.
func (u UUID) wireBytes() []byte {
	if s, ok := u.ShortForm(); ok {
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, s)
		return b
	}
	return append([]byte(nil), u.Expand().b...)
}

// reverse returns a reversed copy of u.
func reverse(u []byte) []byte {
	// Special-case 16 bit UUIDS for speed.
	l := len(u)
	if l == 2 {
		return []byte{u[1], u[0]}
	}
	b := make([]byte, l)
	for i := 0; i < l/2+1; i++ {
		b[i], b[l-i-1] = u[l-i-1], u[i]
	}
	return b
}
