package personalsign

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSignatureHex signs a personal message and returns the wire-format hex
// signature with the given recovery byte offset applied.
func testSignatureHex(t *testing.T, message []byte, vOffset byte) string {
	t.Helper()

	privateKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	sig, err := crypto.Sign(HashPersonalMessage(message), privateKey)
	require.NoError(t, err)

	sig[64] += vOffset
	return "0x" + hex.EncodeToString(sig)
}

func TestParseSignature(t *testing.T) {
	sigHex := testSignatureHex(t, []byte("parse me"), 27)

	t.Run("decomposes r s v", func(t *testing.T) {
		sig, err := ParseSignature(sigHex)
		require.NoError(t, err)

		raw, _ := hex.DecodeString(sigHex[2:])
		assert.Equal(t, raw[:32], sig.R[:])
		assert.Equal(t, raw[32:64], sig.S[:])
		assert.LessOrEqual(t, sig.V, byte(1))
	})

	t.Run("accepts signature without 0x prefix", func(t *testing.T) {
		_, err := ParseSignature(strings.TrimPrefix(sigHex, "0x"))
		assert.NoError(t, err)
	})

	t.Run("normalizes v 27/28 to 0/1", func(t *testing.T) {
		raw, _ := hex.DecodeString(sigHex[2:])
		wireV := raw[64]
		require.True(t, wireV == 27 || wireV == 28)

		sig, err := ParseSignature(sigHex)
		require.NoError(t, err)
		assert.Equal(t, wireV-27, sig.V)
	})

	t.Run("passes v 0/1 through unchanged", func(t *testing.T) {
		plain := testSignatureHex(t, []byte("parse me"), 0)
		sig, err := ParseSignature(plain)
		require.NoError(t, err)
		assert.LessOrEqual(t, sig.V, byte(1))
	})

	t.Run("Bytes round trips the layout", func(t *testing.T) {
		sig, err := ParseSignature(sigHex)
		require.NoError(t, err)

		out := sig.Bytes()
		assert.Equal(t, sig.R[:], out[:32])
		assert.Equal(t, sig.S[:], out[32:64])
		assert.Equal(t, sig.V, out[64])
	})
}

func TestParseSignatureErrors(t *testing.T) {
	valid := testSignatureHex(t, []byte("errors"), 27)

	tests := []struct {
		name      string
		signature string
		wantErr   error
	}{
		{"empty string", "", ErrInvalidSignatureFormat},
		{"bare prefix", "0x", ErrInvalidSignatureFormat},
		{"non-hex characters", "0x" + strings.Repeat("zz", 65), ErrInvalidSignatureFormat},
		{"odd hex length", valid + "a", ErrInvalidSignatureFormat},
		{"too short", valid[:len(valid)-2], ErrInvalidSignatureLength},
		{"too long", valid + "ff", ErrInvalidSignatureLength},
		{"recovery byte 2", valid[:len(valid)-2] + "02", ErrInvalidSignature},
		{"recovery byte 29", valid[:len(valid)-2] + "1d", ErrInvalidSignature},
		{"recovery byte 255", valid[:len(valid)-2] + "ff", ErrInvalidSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSignature(tt.signature)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}
