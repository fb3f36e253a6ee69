package personalsign

import "errors"

// Error kinds returned by the verification pipeline. Callers should match
// with errors.Is; every error returned by this package wraps one of these.
var (
	// ErrInvalidSignatureLength is returned when a signature does not decode
	// to exactly 65 bytes (r: 32, s: 32, v: 1).
	ErrInvalidSignatureLength = errors.New("invalid signature length")

	// ErrInvalidSignatureFormat is returned when a signature is not valid hex.
	ErrInvalidSignatureFormat = errors.New("invalid signature format")

	// ErrInvalidSignature is returned when the recovery id is outside the
	// accepted domain or the curve cannot reconstruct a consistent point.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidPublicKeyLength is returned when a public key is not the
	// 65-byte uncompressed encoding.
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")

	// ErrInvalidPublicKeyFormat is returned when a public key does not carry
	// the uncompressed-point marker byte.
	ErrInvalidPublicKeyFormat = errors.New("invalid public key format")

	// ErrInvalidPrivateKeyLength is returned when a private key is not
	// exactly 32 bytes.
	ErrInvalidPrivateKeyLength = errors.New("invalid private key length")

	// ErrInvalidPrivateKeyFormat is returned when a private key is not valid
	// hex or is not a usable scalar for the curve.
	ErrInvalidPrivateKeyFormat = errors.New("invalid private key format")
)
