// Package personalsign verifies Ethereum "personal message" (EIP-191)
// signatures: it hashes a prefixed message, recovers the signer's public key
// from the signature, derives the account address, and compares it against a
// claimed address.
//
// All functions are pure and safe for concurrent use.
package personalsign

const (
	// Version is the SDK version
	Version = "1.0.0"

	// MessagePrefix is the EIP-191 personal-message tag. The message's byte
	// length in decimal ASCII is appended before hashing.
	MessagePrefix = "\x19Ethereum Signed Message:\n"

	// SignatureLength is the byte length of an r || s || v signature
	SignatureLength = 65

	// PublicKeyLength is the byte length of an uncompressed public key
	PublicKeyLength = 65

	// PrivateKeyLength is the byte length of a private key scalar
	PrivateKeyLength = 32

	// AddressLength is the byte length of an account address
	AddressLength = 20

	// uncompressedPointMarker is the first byte of an uncompressed EC point
	uncompressedPointMarker = 0x04
)
