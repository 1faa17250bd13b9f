package keys

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/identikit/keys/engine"
)

// EncodedVerKey owns the textual form of a verification key together
// with its algorithm and encoding tags. Construction is permissive so
// parsing can be staged; Validate enforces that the text decodes to key
// material of the right length.
//
// The text is held as a byte buffer rather than a string so Zero can
// overwrite it.
type EncodedVerKey struct {
	key []byte
	alg KeyType
	enc KeyEncoding
}

// NewEncodedVerKey wraps an already-encoded key string verbatim.
func NewEncodedVerKey(key string, alg KeyType, enc KeyEncoding) *EncodedVerKey {
	return &EncodedVerKey{key: []byte(key), alg: alg, enc: enc}
}

// BuildFullVerKey expands a possibly-abbreviated verkey relative to its
// destination identifier. It is shorthand for ParseQualified with default
// tags.
func BuildFullVerKey(dest, key string) (*EncodedVerKey, error) {
	return ParseQualified(key, dest, KeyTypeDefault, KeyEncodingDefault)
}

// Parse reads a verkey in qualified form ("KEY" or "KEY:alg") with no
// destination and default tags.
func Parse(key string) (*EncodedVerKey, error) {
	return ParseQualified(key, "", KeyTypeDefault, KeyEncodingDefault)
}

// ParseQualified reads a verkey in qualified or short form.
//
// The input is split on the first colon; a non-empty tail overrides alg
// and the head becomes the key, so a tail like "bar:baz" is a single
// opaque algorithm tag. A key starting with "~" is the short form: it
// abbreviates a full verkey whose leading bytes are the decoded dest, so
// dest is mandatory and the two decoded halves are concatenated and
// re-encoded. The halves are not length-checked here; a malformed pair
// surfaces later through Validate.
func ParseQualified(key, dest string, alg KeyType, enc KeyEncoding) (*EncodedVerKey, error) {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		if tail := key[i+1:]; tail != "" {
			alg = KeyType(tail)
		}
		key = key[:i]
	}

	if !strings.HasPrefix(key, "~") {
		return NewEncodedVerKey(key, alg, enc), nil
	}

	if dest == "" {
		return nil, ErrMissingDestination
	}
	full, err := decodeKey(dest, enc)
	if err != nil {
		return nil, err
	}
	suffix, err := decodeKey(key[1:], enc)
	if err != nil {
		return nil, err
	}
	full = append(full, suffix...)
	text, err := encodeKey(full, enc)
	if err != nil {
		return nil, err
	}
	return NewEncodedVerKey(text, alg, enc), nil
}

// FromBytes interprets a buffer as UTF-8 text and parses it.
func FromBytes(buf []byte) (*EncodedVerKey, error) {
	if !utf8.Valid(buf) {
		return nil, fmt.Errorf("%w: key is not valid UTF-8", ErrInvalidEncoding)
	}
	return Parse(string(buf))
}

// Algorithm returns the key's algorithm tag.
func (k *EncodedVerKey) Algorithm() KeyType {
	return k.alg
}

// Encoding returns the key's encoding tag.
func (k *EncodedVerKey) Encoding() KeyEncoding {
	return k.enc
}

// Key returns the encoded key text without qualification.
func (k *EncodedVerKey) Key() string {
	return string(k.key)
}

// EncodedKeyBytes returns the encoded text as raw bytes, without
// copying.
func (k *EncodedVerKey) EncodedKeyBytes() []byte {
	return k.key
}

// LongForm renders "KEY:alg", appending the separator even when the
// algorithm tag is the default. Use String for the display form.
func (k *EncodedVerKey) LongForm() string {
	return string(k.key) + ":" + string(k.alg)
}

// String renders the bare key text when the algorithm tag is the
// default, and the long form otherwise.
func (k *EncodedVerKey) String() string {
	if k.alg == KeyTypeDefault {
		return string(k.key)
	}
	return k.LongForm()
}

// AsBase58 re-encodes the key into base58. Keys already in base58 (or
// the unspecified default, which resolves to base58) are returned
// unchanged.
func (k *EncodedVerKey) AsBase58() (*EncodedVerKey, error) {
	if k.enc.resolve() == KeyEncodingBase58 {
		return k, nil
	}
	raw, err := k.KeyBytes()
	if err != nil {
		return nil, err
	}
	defer ZeroBytes(raw)
	text, err := encodeKey(raw, KeyEncodingBase58)
	if err != nil {
		return nil, err
	}
	return NewEncodedVerKey(text, k.alg, KeyEncodingBase58), nil
}

// KeyBytes decodes the text under the key's encoding tag.
func (k *EncodedVerKey) KeyBytes() ([]byte, error) {
	return decodeKey(string(k.key), k.enc)
}

// DecodeVerKey decodes into a VerKey carrying the same algorithm tag.
func (k *EncodedVerKey) DecodeVerKey() (*VerKey, error) {
	raw, err := k.KeyBytes()
	if err != nil {
		return nil, err
	}
	vk := NewVerKey(raw, k.alg)
	ZeroBytes(raw)
	return vk, nil
}

// KeyExchange decodes the key and converts it into its X25519 form.
func (k *EncodedVerKey) KeyExchange() (*VerKey, error) {
	switch k.alg.resolve() {
	case KeyTypeEd25519:
		raw, err := k.KeyBytes()
		if err != nil {
			return nil, err
		}
		defer ZeroBytes(raw)
		x, err := engine.Default().PublicToExchangeKey(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyExchange, err)
		}
		return NewVerKey(x, KeyTypeX25519), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, k.alg)
	}
}

// VerifySignature decodes the key and checks a signature over a message,
// with the same contract as VerKey.VerifySignature.
func (k *EncodedVerKey) VerifySignature(message, signature []byte) (bool, error) {
	switch k.alg.resolve() {
	case KeyTypeEd25519:
		raw, err := k.KeyBytes()
		if err != nil {
			return false, err
		}
		defer ZeroBytes(raw)
		ok, err := engine.Default().Verify(raw, message, signature)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrVerification, err)
		}
		return ok, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, k.alg)
	}
}

// Validate decodes the text and checks the key-length invariant,
// mirroring VerKey.Validate.
func (k *EncodedVerKey) Validate() error {
	raw, err := k.KeyBytes()
	if err != nil {
		return err
	}
	defer ZeroBytes(raw)
	if len(raw) == engine.PublicKeySize {
		return nil
	}
	return fmt.Errorf("%w: %d bytes", ErrInvalidKeyLength, len(raw))
}

// Zero wipes the text and resets both tags.
func (k *EncodedVerKey) Zero() {
	ZeroBytes(k.key)
	k.key = nil
	k.alg = KeyTypeDefault
	k.enc = KeyEncodingDefault
}
