package personalsign

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DeriveAddress converts a 65-byte uncompressed public key into its account
// address: drop the point marker, keccak the 64-byte X || Y body, and take
// the low 20 bytes of the digest. The result is EIP-55 checksummed hex with
// a "0x" prefix; address comparison elsewhere stays case-insensitive.
func DeriveAddress(pubKey []byte) (string, error) {
	if len(pubKey) != PublicKeyLength {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKeyLength, PublicKeyLength, len(pubKey))
	}
	if pubKey[0] != uncompressedPointMarker {
		return "", fmt.Errorf("%w: missing uncompressed point marker", ErrInvalidPublicKeyFormat)
	}

	digest := crypto.Keccak256(pubKey[1:])
	addr := common.BytesToAddress(digest[32-AddressLength:])
	return addr.Hex(), nil
}
