package keys

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/identikit/keys/engine"
)

// SignKey owns raw secret key material together with its algorithm tag.
// For Ed25519 the material is the engine's native secret encoding: the
// 32-byte seed followed by the derived 32-byte public key. Instances are
// exclusively owned by their holder; call Zero when done with one.
type SignKey struct {
	key []byte
	alg KeyType
}

// NewSignKey wraps secret key bytes verbatim. The bytes are copied; no
// validation happens here, the engine rejects malformed material at use
// time. An empty alg leaves the key unspecified (treated as Ed25519 by
// operations).
func NewSignKey(key []byte, alg KeyType) *SignKey {
	buf := make([]byte, len(key))
	copy(buf, key)
	return &SignKey{key: buf, alg: alg}
}

// Generate asks the signature engine for a fresh keypair. Only Ed25519
// (or the unspecified default) is supported.
func Generate(alg KeyType) (*SignKey, error) {
	switch alg.resolve() {
	case KeyTypeEd25519:
		_, sec, err := engine.Default().GenerateKeypair(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
		}
		sk := NewSignKey(sec, KeyTypeEd25519)
		ZeroBytes(sec)
		logrus.WithFields(logrus.Fields{
			"package":  "keys",
			"key_type": KeyTypeEd25519,
		}).Debug("generated signing key")
		return sk, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
}

// FromSeed deterministically expands an Ed25519 keypair from a seed. A
// 32-byte seed is used as-is; any other length is expanded by the engine,
// so the same seed always yields the same key.
func FromSeed(seed []byte) (*SignKey, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: empty seed", ErrKeyDerivation)
	}
	_, sec, err := engine.Default().GenerateKeypair(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}
	sk := NewSignKey(sec, KeyTypeEd25519)
	ZeroBytes(sec)
	return sk, nil
}

// Algorithm returns the key's algorithm tag.
func (sk *SignKey) Algorithm() KeyType {
	return sk.alg
}

// KeyBytes returns a copy of the raw secret key material. The caller is
// responsible for wiping the copy.
func (sk *SignKey) KeyBytes() []byte {
	buf := make([]byte, len(sk.key))
	copy(buf, sk.key)
	return buf
}

// PublicKey derives the verification key. For Ed25519 the public key is
// the trailing 32 bytes of the secret encoding.
func (sk *SignKey) PublicKey() (*VerKey, error) {
	switch sk.alg.resolve() {
	case KeyTypeEd25519:
		if len(sk.key) != engine.SecretKeySize {
			return nil, fmt.Errorf("%w: secret key is %d bytes", ErrInvalidKeyLength, len(sk.key))
		}
		return NewVerKey(sk.key[engine.SeedSize:], sk.alg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, sk.alg)
	}
}

// Sign signs a message with this key via the signature engine.
func (sk *SignKey) Sign(message []byte) ([]byte, error) {
	switch sk.alg.resolve() {
	case KeyTypeEd25519:
		sig, err := engine.Default().Sign(sk.key, message)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSigning, err)
		}
		return sig, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, sk.alg)
	}
}

// KeyExchange converts this Ed25519 signing key into its X25519 form for
// Diffie-Hellman use.
func (sk *SignKey) KeyExchange() (*SignKey, error) {
	switch sk.alg.resolve() {
	case KeyTypeEd25519:
		x, err := engine.Default().SecretToExchangeKey(sk.key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyExchange, err)
		}
		xk := NewSignKey(x, KeyTypeX25519)
		ZeroBytes(x)
		return xk, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, sk.alg)
	}
}

// Zero wipes the secret material and resets the algorithm tag. It is
// idempotent and must be called on every exit path that drops the key.
func (sk *SignKey) Zero() {
	ZeroBytes(sk.key)
	sk.key = nil
	sk.alg = KeyTypeDefault
}
