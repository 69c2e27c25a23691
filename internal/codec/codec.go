// Package codec implements the primitive encodings shared by every layer of
// the SDK: fixed-width big-endian integers, 2-byte length-prefixed byte
// strings, Base58, and the chain's Base58-check variant whose checksum is the
// first 4 bytes of keccak256(blake2b256(payload)).
package codec

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const (
	// MaxPrefixedLen is the largest byte string a 2-byte length prefix can carry.
	MaxPrefixedLen = math.MaxUint16

	// ChecksumLen is the length of a Base58-check checksum.
	ChecksumLen = 4
)

// PutUint8 encodes v as a single byte.
func PutUint8(v uint8) []byte {
	return []byte{v}
}

// PutUint16 encodes v as 2 big-endian bytes.
func PutUint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

// PutUint32 encodes v as 4 big-endian bytes.
func PutUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// PutUint64 encodes v as 8 big-endian bytes.
func PutUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// Uint16 decodes 2 big-endian bytes.
func Uint16(b []byte) (uint16, error) {
	if len(b) < 2 {
		return 0, fmt.Errorf("codec: need 2 bytes for uint16, have %d", len(b))
	}
	return binary.BigEndian.Uint16(b), nil
}

// Uint32 decodes 4 big-endian bytes.
func Uint32(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, fmt.Errorf("codec: need 4 bytes for uint32, have %d", len(b))
	}
	return binary.BigEndian.Uint32(b), nil
}

// Uint64 decodes 8 big-endian bytes.
func Uint64(b []byte) (uint64, error) {
	if len(b) < 8 {
		return 0, fmt.Errorf("codec: need 8 bytes for uint64, have %d", len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

// PackPrefixed encodes b with a 2-byte big-endian length prefix.
// Fails if b exceeds the prefix's range.
func PackPrefixed(b []byte) ([]byte, error) {
	if len(b) > MaxPrefixedLen {
		return nil, fmt.Errorf("codec: value of %d bytes exceeds 2-byte length prefix", len(b))
	}
	out := make([]byte, 0, 2+len(b))
	out = append(out, PutUint16(uint16(len(b)))...)
	return append(out, b...), nil
}

// UnpackPrefixed decodes a 2-byte length-prefixed byte string from the front
// of b and returns the value together with the remaining bytes.
func UnpackPrefixed(b []byte) (val, rest []byte, err error) {
	l, err := Uint16(b)
	if err != nil {
		return nil, nil, err
	}
	if len(b) < 2+int(l) {
		return nil, nil, fmt.Errorf("codec: length prefix %d exceeds remaining %d bytes", l, len(b)-2)
	}
	return b[2 : 2+int(l)], b[2+int(l):], nil
}

// Base58Encode encodes b as a Base58 string.
func Base58Encode(b []byte) string {
	return base58.Encode(b)
}

// Base58Decode decodes a Base58 string.
func Base58Decode(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid base58 string: %w", err)
	}
	return b, nil
}

// Blake2b256 returns the 32-byte BLAKE2b-256 digest of b.
func Blake2b256(b []byte) []byte {
	d := blake2b.Sum256(b)
	return d[:]
}

// Keccak256 returns the 32-byte legacy Keccak-256 digest of b.
func Keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

// SecureHash is the chain's standard digest: keccak256(blake2b256(b)).
// Addresses, checksums and account seeds all build on it.
func SecureHash(b []byte) []byte {
	return Keccak256(Blake2b256(b))
}

// Sha256 returns the SHA-256 digest of b.
func Sha256(b []byte) []byte {
	d := sha256.Sum256(b)
	return d[:]
}

// Checksum returns the 4-byte Base58-check checksum over payload.
func Checksum(payload []byte) []byte {
	return SecureHash(payload)[:ChecksumLen]
}

// Base58CheckEncode appends a checksum to payload and Base58-encodes the result.
func Base58CheckEncode(payload []byte) string {
	out := make([]byte, 0, len(payload)+ChecksumLen)
	out = append(out, payload...)
	out = append(out, Checksum(payload)...)
	return Base58Encode(out)
}

// Base58CheckDecode decodes s and verifies its trailing checksum, returning
// the payload without the checksum.
func Base58CheckDecode(s string) ([]byte, error) {
	b, err := Base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) <= ChecksumLen {
		return nil, fmt.Errorf("codec: base58-check string too short (%d bytes)", len(b))
	}
	payload, sum := b[:len(b)-ChecksumLen], b[len(b)-ChecksumLen:]
	if !bytesEqual(sum, Checksum(payload)) {
		return nil, fmt.Errorf("codec: base58-check checksum mismatch")
	}
	return payload, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
