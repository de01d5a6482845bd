package transaction

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/holiman/uint256"

	"zyn/common"
	"zyn/errors"
)

const (
	// wordHexLen is the width of every 256-bit integer field.
	wordHexLen = 64
	// lenHexLen is the width of the 32-bit code/data length fields.
	lenHexLen = 8
	// addressHexLen is the width of the recipient address.
	addressHexLen = 40
)

// CanonicalHex builds the exact signing message for the transaction: the
// fixed-order, fixed-width hex concatenation of
//
//	version | nonce | to | pubKey | amount | gasPrice | gasLimit |
//	len(code) | code | len(data) | data
//
// with 256-bit integers zero-padded to 64 hex digits, the address and public
// key inserted raw, and the two byte lengths zero-padded to 8 hex digits.
// Field order must never change; a node reconstructs this byte-for-byte.
func (tx *Transaction) CanonicalHex() (string, error) {
	to := strings.ToLower(tx.To)
	if len(to) != addressHexLen || !isHexDigits(to) {
		return "", errors.NewError(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("recipient address must be %d hex characters", addressHexLen))
	}
	pub := strings.ToLower(common.StripHexPrefix(tx.PubKey))
	if pub == "" || len(pub)%2 != 0 || !isHexDigits(pub) {
		return "", errors.NewError(errors.ErrCodeInvalidPublicKey, errors.ErrMsgInvalidPublicKey)
	}

	codeLen, err := encodeByteLen(len(tx.Code))
	if err != nil {
		return "", err
	}
	dataLen, err := encodeByteLen(len(tx.Data))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(encodeUint64Word(tx.Version))
	sb.WriteString(encodeUint64Word(tx.Nonce))
	sb.WriteString(to)
	sb.WriteString(pub)
	sb.WriteString(encodeWord(tx.Amount))
	sb.WriteString(encodeWord(tx.GasPrice))
	sb.WriteString(encodeUint64Word(tx.GasLimit))
	sb.WriteString(codeLen)
	sb.WriteString(hex.EncodeToString([]byte(tx.Code)))
	sb.WriteString(dataLen)
	sb.WriteString(hex.EncodeToString([]byte(tx.Data)))
	return sb.String(), nil
}

// SigningBytes returns the canonical message as raw bytes, the form handed to
// the signer.
func (tx *Transaction) SigningBytes() ([]byte, error) {
	h, err := tx.CanonicalHex()
	if err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, errors.NewError(errors.ErrCodeInternal, err.Error())
	}
	return b, nil
}

// encodeWord renders a 256-bit value as a 64-digit big-endian hex word.
// A nil value encodes as zero. Overflow past 256 bits is impossible by
// construction of uint256.Int; it is rejected earlier, at parse time.
func encodeWord(v *uint256.Int) string {
	if v == nil {
		v = uint256.NewInt(0)
	}
	b := v.Bytes32()
	return hex.EncodeToString(b[:])
}

func encodeUint64Word(v uint64) string {
	return encodeWord(uint256.NewInt(v))
}

// encodeByteLen renders a byte count as an 8-digit hex word. Counts that do
// not fit 32 bits fail fast rather than truncate.
func encodeByteLen(n int) (string, error) {
	if n < 0 || int64(n) > math.MaxUint32 {
		return "", errors.NewError(errors.ErrCodeEncodingOverflow, errors.ErrMsgEncodingOverflow)
	}
	return fmt.Sprintf("%08x", n), nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
