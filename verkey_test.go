package keys

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
)

func TestVerKeyValidate(t *testing.T) {
	cases := []struct {
		name   string
		length int
		valid  bool
	}{
		{"32 bytes", 32, true},
		{"empty", 0, false},
		{"31 bytes", 31, false},
		{"64 bytes", 64, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vk := NewVerKey(make([]byte, tc.length), KeyTypeEd25519)
			err := vk.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidKeyLength) {
				t.Errorf("Validate() error = %v, want ErrInvalidKeyLength", err)
			}
		})
	}
}

func TestVerKeyEncode(t *testing.T) {
	raw := bytes.Repeat([]byte{0x5A}, 32)
	vk := NewVerKey(raw, KeyTypeEd25519)
	defer vk.Zero()

	enc, err := vk.Encode(KeyEncodingBase58)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if enc.Key() != base58.Encode(raw) {
		t.Errorf("Encode() text = %q, want %q", enc.Key(), base58.Encode(raw))
	}
	if enc.Algorithm() != KeyTypeEd25519 || enc.Encoding() != KeyEncodingBase58 {
		t.Errorf("Encode() tags = (%q, %q)", enc.Algorithm(), enc.Encoding())
	}

	// The encoded form decodes back to the same bytes.
	back, err := enc.KeyBytes()
	if err != nil {
		t.Fatalf("KeyBytes() error: %v", err)
	}
	if !bytes.Equal(back, raw) {
		t.Error("encode/decode round trip mismatch")
	}

	if _, err := vk.Encode(KeyEncoding("multibase")); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("Encode(multibase) error = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestVerKeyString(t *testing.T) {
	raw := bytes.Repeat([]byte{0x77}, 32)

	bare := NewVerKey(raw, KeyTypeDefault)
	if bare.String() != base58.Encode(raw) {
		t.Errorf("String() = %q, want %q", bare.String(), base58.Encode(raw))
	}

	// A tagged key renders the long form.
	tagged := NewVerKey(raw, KeyTypeEd25519)
	want := base58.Encode(raw) + ":ed25519"
	if tagged.String() != want {
		t.Errorf("String() = %q, want %q", tagged.String(), want)
	}
}

func TestVerKeyKeyExchangeMatchesEncoded(t *testing.T) {
	sk, err := Generate(KeyTypeDefault)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	defer sk.Zero()
	vk, err := sk.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey() error: %v", err)
	}
	defer vk.Zero()

	xvk, err := vk.KeyExchange()
	if err != nil {
		t.Fatalf("KeyExchange() error: %v", err)
	}
	defer xvk.Zero()
	if xvk.Algorithm() != KeyTypeX25519 {
		t.Errorf("Algorithm() = %q, want %q", xvk.Algorithm(), KeyTypeX25519)
	}

	// The encoded form converts to the same exchange key.
	enc, err := vk.AsBase58()
	if err != nil {
		t.Fatalf("AsBase58() error: %v", err)
	}
	xenc, err := enc.KeyExchange()
	if err != nil {
		t.Fatalf("EncodedVerKey.KeyExchange() error: %v", err)
	}
	defer xenc.Zero()
	if !bytes.Equal(xvk.KeyBytes(), xenc.KeyBytes()) {
		t.Error("VerKey and EncodedVerKey exchange conversions disagree")
	}
}

func TestVerKeyUnsupportedAlgorithm(t *testing.T) {
	vk := NewVerKey(make([]byte, 32), KeyType("p256"))
	defer vk.Zero()

	if _, err := vk.KeyExchange(); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("KeyExchange() error = %v, want ErrUnsupportedAlgorithm", err)
	}
	if _, err := vk.VerifySignature([]byte("m"), make([]byte, 64)); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("VerifySignature() error = %v, want ErrUnsupportedAlgorithm", err)
	}
}

func TestVerKeyZero(t *testing.T) {
	vk := NewVerKey(bytes.Repeat([]byte{0x42}, 32), KeyTypeEd25519)
	buf := vk.key

	vk.Zero()

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("key buffer byte %d = %#x after Zero()", i, b)
		}
	}
	if vk.Algorithm() != KeyTypeDefault {
		t.Error("Zero() did not reset the algorithm tag")
	}
}

func TestParsedVerKeyVerifies(t *testing.T) {
	// End to end: generate, distribute as text, parse back, verify.
	message := []byte("credential payload")

	sk, err := Generate(KeyTypeDefault)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	defer sk.Zero()
	sig, err := sk.Sign(message)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	vk, err := sk.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey() error: %v", err)
	}
	defer vk.Zero()

	// A generated verkey carries its algorithm, so it renders qualified.
	text := vk.String()
	if !strings.HasSuffix(text, ":ed25519") {
		t.Fatalf("String() = %q, expected qualified form", text)
	}

	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	defer parsed.Zero()
	if parsed.Algorithm() != KeyTypeEd25519 {
		t.Fatalf("parsed algorithm = %q, want %q", parsed.Algorithm(), KeyTypeEd25519)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	ok, err := parsed.VerifySignature(message, sig)
	if err != nil {
		t.Fatalf("VerifySignature() error: %v", err)
	}
	if !ok {
		t.Error("parsed verkey rejected a valid signature")
	}

	// And the decoded VerKey agrees.
	decoded, err := parsed.DecodeVerKey()
	if err != nil {
		t.Fatalf("DecodeVerKey() error: %v", err)
	}
	defer decoded.Zero()
	if !bytes.Equal(decoded.KeyBytes(), vk.KeyBytes()) {
		t.Error("DecodeVerKey() bytes differ from the original verkey")
	}
}
