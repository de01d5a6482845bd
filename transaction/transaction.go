package transaction

import (
	"github.com/holiman/uint256"

	"zyn/crypto"
	"zyn/errors"
	"zyn/jsonx"
)

// Transaction is the signed wire object. Amount and GasPrice are 256-bit
// values; Code and Data carry raw contract bytes and may be empty.
type Transaction struct {
	Version   uint64       `json:"version"`
	Nonce     uint64       `json:"nonce"`
	To        string       `json:"to"`
	Amount    *uint256.Int `json:"amount"`
	PubKey    string       `json:"pubKey"`
	GasPrice  *uint256.Int `json:"gasPrice"`
	GasLimit  uint64       `json:"gasLimit"`
	Code      string       `json:"code"`
	Data      string       `json:"data"`
	Signature string       `json:"signature,omitempty"`
}

func (tx *Transaction) Bytes() []byte {
	b, _ := jsonx.Marshal(tx)
	return b
}

// Hash returns the hex digest of the JSON form, used for display and lookup.
// It is not the signing input; see SigningBytes.
func (tx *Transaction) Hash() string {
	return crypto.Sum256(tx.Bytes()).Hex()
}

// GasPriceFromUint64 lifts a uint64 gas price into the 256-bit wire type.
func GasPriceFromUint64(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

// ParseAmount converts a decimal string into a 256-bit value for the amount
// and gas-price fields. Values over 256 bits are an encoding_overflow, never
// silently truncated.
func ParseAmount(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		if err == uint256.ErrBig256Range {
			return nil, errors.NewError(errors.ErrCodeEncodingOverflow, errors.ErrMsgEncodingOverflow)
		}
		return nil, errors.NewError(errors.ErrCodeInvalidArgument, errors.ErrMsgInvalidArgument)
	}
	return v, nil
}
