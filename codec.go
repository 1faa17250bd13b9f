package keys

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// encodeKey renders raw key bytes in the requested textual encoding. The
// unspecified encoding resolves to base58; anything else is unsupported.
func encodeKey(raw []byte, enc KeyEncoding) (string, error) {
	switch enc.resolve() {
	case KeyEncodingBase58:
		return base58.Encode(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}

// decodeKey recovers raw key bytes from their textual encoding.
func decodeKey(text string, enc KeyEncoding) ([]byte, error) {
	switch enc.resolve() {
	case KeyEncodingBase58:
		raw, err := base58.Decode(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}
