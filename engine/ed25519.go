package engine

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/hkdf"

	"github.com/sirupsen/logrus"
)

// Key material sizes used by the Ed25519 engine.
const (
	// SecretKeySize is the native Ed25519 secret key encoding: the
	// 32-byte seed followed by the derived 32-byte public key.
	SecretKeySize = ed25519.PrivateKeySize
	// PublicKeySize is the Ed25519 public key size.
	PublicKeySize = ed25519.PublicKeySize
	// SignatureSize is the Ed25519 signature size.
	SignatureSize = ed25519.SignatureSize
	// SeedSize is the native Ed25519 seed size. Seeds of other lengths
	// are expanded to this size before keypair derivation.
	SeedSize = ed25519.SeedSize
	// ExchangeKeySize is the X25519 key size on both sides.
	ExchangeKeySize = 32
)

// seedExpansionInfo domain-separates HKDF expansion of odd-length seeds.
const seedExpansionInfo = "identikit/keys/ed25519-seed/v1"

// ed25519Engine implements Engine on crypto/ed25519. It carries no state;
// every method is a pure function over its inputs plus, for random
// generation, the process entropy source.
type ed25519Engine struct{}

func (e *ed25519Engine) GenerateKeypair(seed []byte) (pub, sec []byte, err error) {
	if seed == nil {
		edPub, edSec, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"package": "engine",
				"error":   err.Error(),
			}).Error("random keypair generation failed")
			return nil, nil, fmt.Errorf("generate keypair: %w", err)
		}
		return edPub, edSec, nil
	}

	norm, err := normalizeSeed(seed)
	if err != nil {
		return nil, nil, err
	}
	defer wipe(norm)

	edSec := ed25519.NewKeyFromSeed(norm)
	edPub := make([]byte, PublicKeySize)
	copy(edPub, edSec[SeedSize:])
	return edPub, edSec, nil
}

// normalizeSeed brings an arbitrary-length seed to the native 32 bytes.
// A native-length seed passes through untouched for compatibility with
// the fixed-seed convention; other lengths are expanded with HKDF-SHA256.
func normalizeSeed(seed []byte) ([]byte, error) {
	if len(seed) == 0 {
		return nil, errors.New("empty seed")
	}
	out := make([]byte, SeedSize)
	if len(seed) == SeedSize {
		copy(out, seed)
		return out, nil
	}
	r := hkdf.New(sha256.New, seed, nil, []byte(seedExpansionInfo))
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("expand seed: %w", err)
	}
	return out, nil
}

func (e *ed25519Engine) Sign(secret, message []byte) ([]byte, error) {
	if len(secret) != SecretKeySize {
		return nil, fmt.Errorf("secret key must be %d bytes, got %d", SecretKeySize, len(secret))
	}
	return ed25519.Sign(ed25519.PrivateKey(secret), message), nil
}

func (e *ed25519Engine) Verify(public, message, signature []byte) (bool, error) {
	if len(public) != PublicKeySize {
		return false, fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(public))
	}
	if len(signature) != SignatureSize {
		return false, fmt.Errorf("signature must be %d bytes, got %d", SignatureSize, len(signature))
	}
	return ed25519.Verify(ed25519.PublicKey(public), message, signature), nil
}

// SecretToExchangeKey converts an Ed25519 secret key to an X25519 secret
// scalar: SHA-512 of the seed, clamped per RFC 7748. A bare 32-byte seed
// is accepted alongside the native 64-byte encoding.
func (e *ed25519Engine) SecretToExchangeKey(secret []byte) ([]byte, error) {
	var seed []byte
	switch len(secret) {
	case SecretKeySize:
		seed = secret[:SeedSize]
	case SeedSize:
		seed = secret
	default:
		return nil, fmt.Errorf("secret key must be %d or %d bytes, got %d", SecretKeySize, SeedSize, len(secret))
	}

	h := sha512.Sum512(seed)
	h[0] &= 248
	h[31] &= 127
	h[31] |= 64

	out := make([]byte, ExchangeKeySize)
	copy(out, h[:ExchangeKeySize])
	wipe(h[:])
	return out, nil
}

// PublicToExchangeKey converts an Ed25519 public key to its X25519 form
// by mapping the Edwards point to Montgomery u-coordinates.
func (e *ed25519Engine) PublicToExchangeKey(public []byte) ([]byte, error) {
	if len(public) != PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(public))
	}
	point, err := new(edwards25519.Point).SetBytes(public)
	if err != nil {
		return nil, fmt.Errorf("invalid edwards point: %w", err)
	}
	return point.BytesMontgomery(), nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
