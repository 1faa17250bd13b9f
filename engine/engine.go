// Package engine provides the process-wide signature engine behind the
// key types: keypair generation, deterministic seed expansion, signing,
// verification, and Ed25519-to-X25519 key-exchange conversion.
//
// The default engine is created lazily on first use and is immutable
// afterwards, so it is safe for unsynchronized concurrent use.
package engine

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Engine is the byte-level contract the key types program against. All
// arguments and results are raw key material; interpretation of lengths
// is algorithm-specific and documented on the implementation.
type Engine interface {
	// GenerateKeypair returns a fresh (public, secret) keypair. A nil
	// seed requests a random keypair; a non-nil seed requests
	// deterministic expansion and always yields the same pair.
	GenerateKeypair(seed []byte) (pub, sec []byte, err error)

	// Sign signs message with the secret key.
	Sign(secret, message []byte) ([]byte, error)

	// Verify checks signature over message with the public key. A
	// structurally malformed key or signature is an error; a well-formed
	// but wrong signature reports false with a nil error.
	Verify(public, message, signature []byte) (bool, error)

	// SecretToExchangeKey converts a signing secret key to its
	// key-exchange (X25519) secret form.
	SecretToExchangeKey(secret []byte) ([]byte, error)

	// PublicToExchangeKey converts a verification key to its
	// key-exchange (X25519) public form.
	PublicToExchangeKey(public []byte) ([]byte, error)
}

var (
	defaultOnce   sync.Once
	defaultEngine Engine
)

// Default returns the process-wide Ed25519 engine, initializing it on
// first call. The returned engine holds no mutable state.
func Default() Engine {
	defaultOnce.Do(func() {
		defaultEngine = &ed25519Engine{}
		logrus.WithFields(logrus.Fields{
			"package": "engine",
			"engine":  "ed25519",
		}).Debug("signature engine initialized")
	})
	return defaultEngine
}
