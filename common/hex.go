package common

import (
	"encoding/hex"
	"fmt"
)

// HasHexPrefix reports whether the string carries a 0x/0X prefix.
func HasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// StripHexPrefix removes a leading 0x/0X if present.
func StripHexPrefix(s string) string {
	if HasHexPrefix(s) {
		return s[2:]
	}
	return s
}

// DecodeHex decodes a hex string to bytes, tolerating an optional 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(StripHexPrefix(s))
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex string: %w", err)
	}
	return b, nil
}

// EncodeToHex encodes bytes as an unprefixed lowercase hex string.
func EncodeToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodeToPrefixedHex encodes bytes as a 0x-prefixed lowercase hex string.
func EncodeToPrefixedHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
