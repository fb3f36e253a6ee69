package personalsign

import (
	"encoding/hex"
	"strings"
)

// IsHex checks if a string is valid hex with an optional "0x" prefix.
// An empty string (or a bare "0x") is not valid hex.
func IsHex(s string) bool {
	stripped := StripHexPrefix(s)
	if len(stripped) == 0 {
		return false
	}
	for _, c := range stripped {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// StripHexPrefix removes a leading "0x" if present
func StripHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// HexToBytes converts a hex string (with or without "0x" prefix) to bytes
func HexToBytes(hexStr string) ([]byte, error) {
	return hex.DecodeString(StripHexPrefix(hexStr))
}

// NormalizeAddress lowercases an address and ensures a "0x" prefix
func NormalizeAddress(address string) string {
	return "0x" + strings.ToLower(StripHexPrefix(address))
}

// IsValidAddress checks if a string is a valid 20-byte hex address
func IsValidAddress(address string) bool {
	addr := StripHexPrefix(address)
	if len(addr) != AddressLength*2 {
		return false
	}
	_, err := hex.DecodeString(addr)
	return err == nil
}
