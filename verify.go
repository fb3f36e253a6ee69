package personalsign

import "strings"

// Verify checks that a personal message was signed by the holder of the
// claimed account address.
//
// It decodes the signature, hashes the prefixed message, recovers the
// signer's public key, derives its address, and compares it to the claimed
// address. The comparison is case-insensitive and tolerates a missing "0x"
// prefix on the claimed address.
//
// Args:
//
//	message: The raw message bytes (NOT pre-hashed)
//	signature: Hex signature, "0x" + r(64) + s(64) + v(2)
//	address: The address that should have signed the message
//
// Returns:
//
//	true if the signature is well-formed and recovers to the claimed address
//	false with a nil error if it is well-formed but recovers elsewhere;
//	a mismatch is an expected outcome, not an error
//	false with an error if the signature is malformed; callers must not
//	treat a raised error as proof of forgery
func Verify(message []byte, signature string, address string) (bool, error) {
	recovered, err := RecoverAddress(message, signature)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(StripHexPrefix(recovered), StripHexPrefix(address)), nil
}
