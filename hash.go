package personalsign

import (
	"strconv"

	"github.com/ethereum/go-ethereum/crypto"
)

// HashPersonalMessage computes the EIP-191 personal-message digest:
//
//	keccak256("\x19Ethereum Signed Message:\n" + len(message) + message)
//
// The length is the message's size in bytes (not characters) written as
// decimal ASCII. The prefix must match bit-for-bit; any deviation yields an
// unrelated hash rather than an error.
func HashPersonalMessage(message []byte) []byte {
	prefix := MessagePrefix + strconv.Itoa(len(message))
	return crypto.Keccak256([]byte(prefix), message)
}
