package crypto

import (
	"fmt"
	"math/big"

	"zyn/errors"
)

const (
	componentByteLen = 32
	componentHexLen  = 2 * componentByteLen

	// SignatureHexLen is the formatted signature length: r then s, each
	// left-zero-padded to exactly 64 hex digits.
	SignatureHexLen = 2 * componentHexLen
)

// Signature is the (r, s) pair produced by the signing capability.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Hex formats the signature as r||s with both components left-zero-padded to
// 64 hex digits. Leading zero bytes are never dropped; verifiers reject
// variable-length signatures.
func (sig Signature) Hex() (string, error) {
	r, err := padComponent(sig.R)
	if err != nil {
		return "", err
	}
	s, err := padComponent(sig.S)
	if err != nil {
		return "", err
	}
	return r + s, nil
}

func padComponent(v *big.Int) (string, error) {
	if v == nil || v.Sign() < 0 {
		return "", errors.NewError(errors.ErrCodeInvalidArgument, errors.ErrMsgInvalidArgument)
	}
	if v.BitLen() > 8*componentByteLen {
		return "", errors.NewError(errors.ErrCodeEncodingOverflow, errors.ErrMsgEncodingOverflow)
	}
	return fmt.Sprintf("%064x", v), nil
}
