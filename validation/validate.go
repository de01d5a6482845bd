package validation

import (
	"math/big"
	"net/url"
	"regexp"

	"github.com/holiman/uint256"

	"zyn/common"
)

var (
	addressRe = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)
	privKeyRe = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
	pubKeyRe  = regexp.MustCompile(`^[0-9a-fA-F]{66}$`)
	txHashRe  = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
)

// IsAddress reports whether s is a 40-hex-character address.
func IsAddress(s string) bool {
	return addressRe.MatchString(s)
}

// IsPrivateKey reports whether s is a 64-hex-character scalar, with or
// without a 0x prefix. It checks shape only, not curve range; see
// wallet.VerifyPrivateKey for the range check.
func IsPrivateKey(s string) bool {
	return privKeyRe.MatchString(common.StripHexPrefix(s))
}

// IsPubKey reports whether s has the 66-hex compressed public key length.
//
// Note the wallet derives and transmits the 130-character uncompressed form,
// which this predicate rejects. The two lengths are knowingly out of step;
// callers validating wallet output must not rely on IsPubKey until the
// on-chain convention is clarified.
func IsPubKey(s string) bool {
	return pubKeyRe.MatchString(s)
}

// IsTxHash reports whether s is a 64-hex-character transaction hash.
func IsTxHash(s string) bool {
	return txHashRe.MatchString(s)
}

// IsURL reports whether s is a well-formed absolute URL.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsNumber reports whether v is a numeric value, including the big-integer
// forms amounts flow through.
func IsNumber(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case *big.Int:
		return n != nil
	case *uint256.Int:
		return n != nil
	default:
		return false
	}
}

// IsString reports whether v is a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}
