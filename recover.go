package personalsign

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// RecoverPublicKey recovers the signer's uncompressed public key from a
// 32-byte message hash and parsed signature components.
//
// Recovery is delegated to the secp256k1 primitive; it fails with
// ErrInvalidSignature when no curve point is consistent with (hash, r, s, v),
// e.g. r or s out of range.
func RecoverPublicKey(hash []byte, sig *SignatureComponents) ([]byte, error) {
	if len(hash) != 32 {
		return nil, fmt.Errorf("%w: hash must be 32 bytes, got %d", ErrInvalidSignature, len(hash))
	}

	pubKey, err := crypto.Ecrecover(hash, sig.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return pubKey, nil
}

// RecoverAddress recovers the account address that signed a personal message.
// It composes the full pipeline minus the final comparison: hash the prefixed
// message, recover the public key, derive the address.
func RecoverAddress(message []byte, signature string) (string, error) {
	sig, err := ParseSignature(signature)
	if err != nil {
		return "", err
	}

	hash := HashPersonalMessage(message)

	pubKey, err := RecoverPublicKey(hash, sig)
	if err != nil {
		return "", err
	}

	return DeriveAddress(pubKey)
}
