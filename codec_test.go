package keys

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestBase58RoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		raw := make([]byte, 32)
		if _, err := rand.Read(raw); err != nil {
			t.Fatalf("rand.Read() error: %v", err)
		}

		text, err := encodeKey(raw, KeyEncodingBase58)
		if err != nil {
			t.Fatalf("encodeKey() error: %v", err)
		}
		back, err := decodeKey(text, KeyEncodingBase58)
		if err != nil {
			t.Fatalf("decodeKey(%q) error: %v", text, err)
		}
		if !bytes.Equal(back, raw) {
			t.Fatalf("round trip mismatch: %x != %x", back, raw)
		}
	}
}

func TestDefaultEncodingResolvesToBase58(t *testing.T) {
	raw := []byte{1, 2, 3, 4}

	viaDefault, err := encodeKey(raw, KeyEncodingDefault)
	if err != nil {
		t.Fatalf("encodeKey(default) error: %v", err)
	}
	viaBase58, err := encodeKey(raw, KeyEncodingBase58)
	if err != nil {
		t.Fatalf("encodeKey(base58) error: %v", err)
	}
	if viaDefault != viaBase58 {
		t.Errorf("default encoding %q differs from base58 %q", viaDefault, viaBase58)
	}
}

func TestDecodeRejectsBadAlphabet(t *testing.T) {
	// 0, O, I and l are outside the base58 alphabet.
	for _, text := range []string{"0", "O", "I", "l", "abc0def"} {
		if _, err := decodeKey(text, KeyEncodingBase58); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("decodeKey(%q) error = %v, want ErrInvalidEncoding", text, err)
		}
	}
}

func TestUnknownEncodingRejected(t *testing.T) {
	if _, err := encodeKey([]byte{1}, KeyEncoding("hex")); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("encodeKey(hex) error = %v, want ErrUnsupportedEncoding", err)
	}
	if _, err := decodeKey("ff", KeyEncoding("hex")); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("decodeKey(hex) error = %v, want ErrUnsupportedEncoding", err)
	}
}
