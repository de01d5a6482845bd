package crypto

import (
	"crypto/rand"

	"zyn/errors"
)

// ReadEntropy fills a fresh buffer with n bytes from the platform CSPRNG.
// Any failure surfaces as entropy_unavailable; there is no fallback to a
// weaker source.
func ReadEntropy(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.NewError(errors.ErrCodeEntropyUnavailable, errors.ErrMsgEntropyUnavailable)
	}
	return b, nil
}
