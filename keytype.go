package keys

// KeyType identifies the signature algorithm a key belongs to. It is an
// open string type: the constants below are the recognized values, the
// empty string means "unspecified", and any other value is carried
// opaquely. Operations that need a concrete algorithm treat an
// unspecified tag as Ed25519 and fail on anything else they do not
// recognize.
type KeyType string

const (
	// KeyTypeDefault is the unspecified algorithm tag.
	KeyTypeDefault KeyType = ""
	// KeyTypeEd25519 tags Ed25519 signing and verification keys.
	KeyTypeEd25519 KeyType = "ed25519"
	// KeyTypeX25519 tags X25519 key-exchange keys produced by conversion.
	KeyTypeX25519 KeyType = "x25519"
)

// String returns the tag value.
func (kt KeyType) String() string {
	return string(kt)
}

// Known reports whether the tag is one of the recognized algorithms or
// the unspecified default.
func (kt KeyType) Known() bool {
	switch kt {
	case KeyTypeDefault, KeyTypeEd25519, KeyTypeX25519:
		return true
	}
	return false
}

// resolve maps the unspecified tag to the built-in algorithm. Bare
// verkeys are conventionally Ed25519, so an untagged key resolves there.
func (kt KeyType) resolve() KeyType {
	if kt == KeyTypeDefault {
		return KeyTypeEd25519
	}
	return kt
}

// KeyEncoding identifies the textual encoding of a key. Like KeyType it
// is an open string type; base58 is the one recognized encoding and the
// unspecified default resolves to it.
type KeyEncoding string

const (
	// KeyEncodingDefault is the unspecified encoding tag.
	KeyEncodingDefault KeyEncoding = ""
	// KeyEncodingBase58 tags keys encoded with the Bitcoin base58 alphabet.
	KeyEncodingBase58 KeyEncoding = "base58"
)

// String returns the tag value.
func (ke KeyEncoding) String() string {
	return string(ke)
}

func (ke KeyEncoding) resolve() KeyEncoding {
	if ke == KeyEncodingDefault {
		return KeyEncodingBase58
	}
	return ke
}
