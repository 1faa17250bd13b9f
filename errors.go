package keys

import "errors"

// Sentinel errors returned by key operations. All failures are local and
// deterministic; callers match them with errors.Is.
var (
	// ErrUnsupportedAlgorithm is returned when an operation requires an
	// algorithm the library does not implement.
	ErrUnsupportedAlgorithm = errors.New("unsupported key algorithm")

	// ErrUnsupportedEncoding is returned when an operation requires a
	// textual encoding the library does not implement.
	ErrUnsupportedEncoding = errors.New("unsupported key encoding")

	// ErrInvalidEncoding is returned when textual input cannot be decoded:
	// bytes that are not valid UTF-8, or characters outside the base58
	// alphabet.
	ErrInvalidEncoding = errors.New("invalid key encoding")

	// ErrInvalidKeyLength is returned by Validate when key material is not
	// the expected 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrMissingDestination is returned when a short-form verkey ("~...")
	// is parsed without the destination it abbreviates against.
	ErrMissingDestination = errors.New("destination required for short verkey")

	// ErrKeyDerivation is returned when keypair generation or seed
	// expansion fails.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrSigning is returned when the signature engine rejects a signing
	// request.
	ErrSigning = errors.New("signing failed")

	// ErrVerification is returned when a signature cannot be checked at
	// all, for example because the key or signature is structurally
	// malformed. A well-formed but wrong signature is not an error;
	// verification simply reports false.
	ErrVerification = errors.New("signature verification failed")

	// ErrKeyExchange is returned when an Ed25519 key cannot be converted
	// to its X25519 form.
	ErrKeyExchange = errors.New("key exchange conversion failed")
)
