// Package keys models signing keys, verification keys, and their compact
// textual encodings for identity and credential systems.
//
// The package exposes three value types. SignKey owns raw secret key
// material and can sign messages and derive its verification key. VerKey
// owns raw public key material and verifies signatures. EncodedVerKey owns
// the textual form of a verification key together with its algorithm and
// encoding tags, and implements the qualified ("KEY:alg") and short
// ("~SUFFIX" relative to a destination) parse rules.
//
// Ed25519 is the one concretely supported algorithm; the tag types are open
// strings so other algorithms can be carried opaquely, but every operation
// on an unrecognized tag fails with ErrUnsupportedAlgorithm rather than
// panicking. All elliptic-curve arithmetic is delegated to the engine
// subpackage.
//
// Secret material is wiped explicitly: every key type has a Zero method
// that overwrites its buffers and resets its tags. Callers holding secrets
// should defer it.
//
// Example:
//
//	sk, err := keys.Generate("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sk.Zero()
//	vk, _ := sk.PublicKey()
//	fmt.Println("verkey:", vk.String())
package keys
