package personalsign

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PublicKeyFromPrivate derives the 65-byte uncompressed public key from a
// hex-encoded 32-byte private key scalar ("0x" prefix optional) by scalar
// multiplication of the curve base point.
//
// Provided for sign-then-verify round trips; Verify itself never needs a
// private key.
func PublicKeyFromPrivate(privateKey string) ([]byte, error) {
	if !IsHex(privateKey) {
		return nil, fmt.Errorf("%w: not a hex string", ErrInvalidPrivateKeyFormat)
	}

	raw, err := HexToBytes(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKeyFormat, err)
	}
	if len(raw) != PrivateKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPrivateKeyLength, PrivateKeyLength, len(raw))
	}

	priv := secp256k1.PrivKeyFromBytes(raw)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("%w: scalar is zero", ErrInvalidPrivateKeyFormat)
	}

	return priv.PubKey().SerializeUncompressed(), nil
}
