package vsys

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/vsyslabs/govsys/internal/codec"
	"github.com/vsyslabs/govsys/internal/curve25519"
)

const (
	// PrivateKeyLen is the byte length of a private key.
	PrivateKeyLen = curve25519.PrivateKeySize
	// PublicKeyLen is the byte length of a public key.
	PublicKeyLen = curve25519.PublicKeySize
	// SignatureLen is the byte length of a signature.
	SignatureLen = curve25519.SignatureSize
)

// PrivateKey is a 32-byte Curve25519 private key.
type PrivateKey [PrivateKeyLen]byte

// PublicKey is a 32-byte Curve25519 public key.
type PublicKey [PublicKeyLen]byte

// PrivateKeyFromBytes builds a PrivateKey from raw bytes.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	var k PrivateKey
	if len(b) != PrivateKeyLen {
		return k, &KeyError{Reason: fmt.Sprintf("private key must be %d bytes, got %d", PrivateKeyLen, len(b))}
	}
	copy(k[:], b)
	return k, nil
}

// ParsePrivateKey decodes a Base58 private key string.
func ParsePrivateKey(s string) (PrivateKey, error) {
	b, err := codec.Base58Decode(s)
	if err != nil {
		return PrivateKey{}, &KeyError{Reason: fmt.Sprintf("private key is not base58: %v", err)}
	}
	return PrivateKeyFromBytes(b)
}

// String returns the Base58 form of the key.
func (k PrivateKey) String() string {
	return codec.Base58Encode(k[:])
}

// PublicKey derives the public key for k.
func (k PrivateKey) PublicKey() (PublicKey, error) {
	pub, err := curve25519.GeneratePublicKey(k[:])
	if err != nil {
		return PublicKey{}, &KeyError{Reason: err.Error()}
	}
	return PublicKeyFromBytes(pub)
}

// PublicKeyFromBytes builds a PublicKey from raw bytes.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var k PublicKey
	if len(b) != PublicKeyLen {
		return k, &KeyError{Reason: fmt.Sprintf("public key must be %d bytes, got %d", PublicKeyLen, len(b))}
	}
	copy(k[:], b)
	return k, nil
}

// ParsePublicKey decodes a Base58 public key string.
func ParsePublicKey(s string) (PublicKey, error) {
	b, err := codec.Base58Decode(s)
	if err != nil {
		return PublicKey{}, &KeyError{Reason: fmt.Sprintf("public key is not base58: %v", err)}
	}
	return PublicKeyFromBytes(b)
}

// String returns the Base58 form of the key.
func (k PublicKey) String() string {
	return codec.Base58Encode(k[:])
}

// Verify reports whether sig is a valid signature of msg under k.
// It never fails for malformed signatures, it just returns false.
func (k PublicKey) Verify(msg, sig []byte) bool {
	return curve25519.Verify(k[:], msg, sig)
}

// KeyPair holds a private key and its matching public key.
type KeyPair struct {
	Pri PrivateKey
	Pub PublicKey
}

// NewKeyPair derives the public key from pri and returns the pair.
func NewKeyPair(pri PrivateKey) (KeyPair, error) {
	pub, err := pri.PublicKey()
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{Pri: pri, Pub: pub}, nil
}

// KeyPairFromKeys builds a pair from both keys and verifies that pub is the
// key derivable from pri.
func KeyPairFromKeys(pri PrivateKey, pub PublicKey) (KeyPair, error) {
	derived, err := pri.PublicKey()
	if err != nil {
		return KeyPair{}, err
	}
	if derived != pub {
		return KeyPair{}, &KeyError{Reason: "public key does not match private key"}
	}
	return KeyPair{Pri: pri, Pub: pub}, nil
}

// GenerateKeyPair draws a fresh key pair from entropy (crypto/rand when
// entropy is nil).
func GenerateKeyPair(entropy io.Reader) (KeyPair, error) {
	if entropy == nil {
		entropy = rand.Reader
	}
	seed := make([]byte, PrivateKeyLen)
	if _, err := io.ReadFull(entropy, seed); err != nil {
		return KeyPair{}, fmt.Errorf("failed to read key entropy: %w", err)
	}
	priv, err := curve25519.GeneratePrivateKey(seed)
	if err != nil {
		return KeyPair{}, &KeyError{Reason: err.Error()}
	}
	pri, err := PrivateKeyFromBytes(priv)
	if err != nil {
		return KeyPair{}, err
	}
	return NewKeyPair(pri)
}

// Sign signs msg with the pair's private key. entropy may be nil to use
// crypto/rand; the scheme is randomized, so signatures over the same message
// differ while all of them verify.
func (kp KeyPair) Sign(msg []byte, entropy io.Reader) ([]byte, error) {
	sig, err := curve25519.Sign(kp.Pri[:], msg, entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	return sig, nil
}
