package keys

import (
	"fmt"

	"github.com/identikit/keys/engine"
)

// VerKey owns raw public key material together with its algorithm tag.
// For Ed25519 the material is the 32-byte public key; Validate enforces
// the length. Same ownership and disposal contract as SignKey.
type VerKey struct {
	key []byte
	alg KeyType
}

// NewVerKey wraps public key bytes verbatim. The bytes are copied and not
// validated; call Validate to enforce the length invariant.
func NewVerKey(key []byte, alg KeyType) *VerKey {
	buf := make([]byte, len(key))
	copy(buf, key)
	return &VerKey{key: buf, alg: alg}
}

// Algorithm returns the key's algorithm tag.
func (vk *VerKey) Algorithm() KeyType {
	return vk.alg
}

// KeyBytes returns a copy of the raw public key material.
func (vk *VerKey) KeyBytes() []byte {
	buf := make([]byte, len(vk.key))
	copy(buf, vk.key)
	return buf
}

// Encode renders the key in the requested textual encoding. Only base58
// (or the unspecified default) is supported.
func (vk *VerKey) Encode(enc KeyEncoding) (*EncodedVerKey, error) {
	switch enc.resolve() {
	case KeyEncodingBase58:
		text, err := encodeKey(vk.key, enc)
		if err != nil {
			return nil, err
		}
		return NewEncodedVerKey(text, vk.alg, enc.resolve()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}

// AsBase58 is shorthand for Encode(KeyEncodingBase58).
func (vk *VerKey) AsBase58() (*EncodedVerKey, error) {
	return vk.Encode(KeyEncodingBase58)
}

// KeyExchange converts this Ed25519 verification key into its X25519
// form.
func (vk *VerKey) KeyExchange() (*VerKey, error) {
	switch vk.alg.resolve() {
	case KeyTypeEd25519:
		x, err := engine.Default().PublicToExchangeKey(vk.key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyExchange, err)
		}
		return NewVerKey(x, KeyTypeX25519), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, vk.alg)
	}
}

// VerifySignature checks a signature over a message. A structurally
// malformed key or signature is reported as ErrVerification; a
// well-formed but wrong signature returns false with a nil error.
func (vk *VerKey) VerifySignature(message, signature []byte) (bool, error) {
	switch vk.alg.resolve() {
	case KeyTypeEd25519:
		ok, err := engine.Default().Verify(vk.key, message, signature)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrVerification, err)
		}
		return ok, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, vk.alg)
	}
}

// Validate checks the key-length invariant: 32 bytes.
func (vk *VerKey) Validate() error {
	if len(vk.key) == engine.PublicKeySize {
		return nil
	}
	return fmt.Errorf("%w: %d bytes", ErrInvalidKeyLength, len(vk.key))
}

// String renders the base58 form. Formatting is total: if encoding fails
// an error marker is rendered instead.
func (vk *VerKey) String() string {
	enc, err := vk.AsBase58()
	if err != nil {
		return fmt.Sprintf("<error encoding key: %v>", err)
	}
	return enc.String()
}

// Zero wipes the key material and resets the algorithm tag.
func (vk *VerKey) Zero() {
	ZeroBytes(vk.key)
	vk.key = nil
	vk.alg = KeyTypeDefault
}
