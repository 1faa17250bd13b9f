package keys

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// SignKeyFromMnemonic derives a signing key from a BIP-39 mnemonic
// phrase. The mnemonic feeds the standard BIP-39 seed derivation and the
// result is expanded like any other seed, so the same phrase and
// passphrase always yield the same key.
func SignKeyFromMnemonic(mnemonic, passphrase string) (*SignKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("%w: invalid mnemonic", ErrKeyDerivation)
	}
	seed := bip39.NewSeed(mnemonic, passphrase)
	defer ZeroBytes(seed)
	return FromSeed(seed)
}
