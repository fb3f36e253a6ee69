package personalsign

import "fmt"

// SignatureComponents is the fixed-layout decomposition of a 65-byte
// signature blob. V is always normalized to the recovery-id domain {0, 1}.
type SignatureComponents struct {
	R [32]byte
	S [32]byte
	V byte
}

// ParseSignature decodes a hex signature string into its r, s, v components.
//
// The wire format is "0x" + r(64 hex chars) + s(64 hex chars) + v(2 hex
// chars); the 0x prefix is optional. The recovery byte may be encoded as
// 0/1 or as the Ethereum convention 27/28, which is normalized to 0/1. Any
// other value is rejected.
//
// Returns:
//
//	ErrInvalidSignatureFormat if the string is not valid hex
//	ErrInvalidSignatureLength if it does not decode to exactly 65 bytes
//	ErrInvalidSignature if the recovery byte is outside {0, 1, 27, 28}
func ParseSignature(signature string) (*SignatureComponents, error) {
	if !IsHex(signature) {
		return nil, fmt.Errorf("%w: not a hex string", ErrInvalidSignatureFormat)
	}

	raw, err := HexToBytes(signature)
	if err != nil {
		// odd-length hex strings pass the character check but not decoding
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignatureFormat, err)
	}
	if len(raw) != SignatureLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignatureLength, SignatureLength, len(raw))
	}

	sig := &SignatureComponents{}
	copy(sig.R[:], raw[:32])
	copy(sig.S[:], raw[32:64])

	v := raw[64]
	if v == 27 || v == 28 {
		v -= 27
	}
	if v > 1 {
		return nil, fmt.Errorf("%w: recovery id %d out of range", ErrInvalidSignature, raw[64])
	}
	sig.V = v

	return sig, nil
}

// Bytes re-assembles the components into the 65-byte r || s || v layout
// expected by the recovery primitive, with V in {0, 1}.
func (sig *SignatureComponents) Bytes() []byte {
	out := make([]byte, SignatureLength)
	copy(out[:32], sig.R[:])
	copy(out[32:64], sig.S[:])
	out[64] = sig.V
	return out
}
