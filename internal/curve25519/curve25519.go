// Package curve25519 implements the chain's signature scheme: Curve25519
// keys signing in the axolotl/XEdDSA style. A Montgomery-form key pair is
// reused for EdDSA-like signatures by moving the public key's sign bit into
// the signature's last byte, so verifiers only ever see the X25519 public key.
package curve25519

import (
	cryptorand "crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	xcurve "golang.org/x/crypto/curve25519"
)

const (
	// PrivateKeySize is the byte length of a private key.
	PrivateKeySize = 32
	// PublicKeySize is the byte length of a public key.
	PublicKeySize = 32
	// SignatureSize is the byte length of a signature.
	SignatureSize = 64

	randomLen = 64
)

// hashSeparator is mixed into the nonce hash ahead of the private key, per
// the axolotl signing construction.
var hashSeparator = [32]byte{
	0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// GeneratePrivateKey derives a private key from 32 bytes of entropy by
// applying the standard Curve25519 clamping.
func GeneratePrivateKey(seed []byte) ([]byte, error) {
	if len(seed) != PrivateKeySize {
		return nil, fmt.Errorf("curve25519: private key seed must be %d bytes, got %d", PrivateKeySize, len(seed))
	}
	priv := make([]byte, PrivateKeySize)
	copy(priv, seed)
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64
	return priv, nil
}

// GeneratePublicKey returns the X25519 public key for priv.
func GeneratePublicKey(priv []byte) ([]byte, error) {
	if len(priv) != PrivateKeySize {
		return nil, fmt.Errorf("curve25519: private key must be %d bytes, got %d", PrivateKeySize, len(priv))
	}
	pub, err := xcurve.X25519(priv, xcurve.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("curve25519: derive public key: %w", err)
	}
	return pub, nil
}

// Sign signs msg with priv. The signature is randomized: 64 bytes are drawn
// from rand (crypto/rand when rand is nil) and mixed into the nonce, so two
// signatures over the same message differ while both verify.
func Sign(priv, msg []byte, rand io.Reader) ([]byte, error) {
	if len(priv) != PrivateKeySize {
		return nil, fmt.Errorf("curve25519: private key must be %d bytes, got %d", PrivateKeySize, len(priv))
	}
	if rand == nil {
		rand = cryptorand.Reader
	}
	random := make([]byte, randomLen)
	if _, err := io.ReadFull(rand, random); err != nil {
		return nil, fmt.Errorf("curve25519: read signing entropy: %w", err)
	}

	a, err := edwards25519.NewScalar().SetBytesWithClamping(priv)
	if err != nil {
		return nil, fmt.Errorf("curve25519: invalid private key scalar: %w", err)
	}
	// Edwards form of the public key; its sign bit rides in the signature.
	edPub := (&edwards25519.Point{}).ScalarBaseMult(a).Bytes()
	signBit := edPub[31] & 0x80

	h := sha512.New()
	h.Write(hashSeparator[:])
	h.Write(priv)
	h.Write(msg)
	h.Write(random)
	r, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, fmt.Errorf("curve25519: reduce nonce: %w", err)
	}
	encodedR := (&edwards25519.Point{}).ScalarBaseMult(r).Bytes()

	h.Reset()
	h.Write(encodedR)
	h.Write(edPub)
	h.Write(msg)
	k, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, fmt.Errorf("curve25519: reduce challenge: %w", err)
	}
	s := edwards25519.NewScalar().MultiplyAdd(k, a, r)

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, encodedR...)
	sig = append(sig, s.Bytes()...)
	sig[63] &= 0x7f
	sig[63] |= signBit
	return sig, nil
}

// Verify reports whether sig is a valid signature of msg under the X25519
// public key pub. It is a pure predicate: malformed input yields false,
// never an error or panic.
func Verify(pub, msg, sig []byte) bool {
	if len(pub) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}

	// Recover the Edwards public key from the Montgomery u-coordinate:
	// y = (u - 1) / (u + 1), with the x sign bit taken from the signature.
	u, err := new(field.Element).SetBytes(pub)
	if err != nil {
		return false
	}
	one := new(field.Element).One()
	num := new(field.Element).Subtract(u, one)
	den := new(field.Element).Add(u, one)
	y := num.Multiply(num, den.Invert(den))

	edPub := y.Bytes()
	edPub[31] |= sig[63] & 0x80

	a, err := (&edwards25519.Point{}).SetBytes(edPub)
	if err != nil {
		return false
	}

	sBytes := make([]byte, 32)
	copy(sBytes, sig[32:])
	sBytes[31] &= 0x7f
	s, err := edwards25519.NewScalar().SetCanonicalBytes(sBytes)
	if err != nil {
		return false
	}

	h := sha512.New()
	h.Write(sig[:32])
	h.Write(edPub)
	h.Write(msg)
	k, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return false
	}
	minusK := edwards25519.NewScalar().Negate(k)

	// Check s*B - k*A == R.
	r := (&edwards25519.Point{}).VarTimeDoubleScalarBaseMult(minusK, a, s)
	rBytes := r.Bytes()
	for i := range rBytes {
		if rBytes[i] != sig[i] {
			return false
		}
	}
	return true
}
