package crypto

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"zyn/common"
	"zyn/errors"
)

const (
	// PrivateKeySize is the byte length of a private scalar.
	PrivateKeySize = 32
	// CompressedPubKeySize is the byte length of a compressed public key.
	CompressedPubKeySize = 33
	// UncompressedPubKeySize is the byte length of an uncompressed public key.
	UncompressedPubKeySize = 65
)

// Curve is the elliptic-curve engine capability.
type Curve interface {
	KeyFromPrivate(privHex string) (KeyPair, error)
}

// KeyPair exposes derivation and validation for one private scalar.
type KeyPair interface {
	// PublicKey returns the hex-encoded public key point, compressed
	// (66 hex chars) or uncompressed (130 hex chars).
	PublicKey(compressed bool) string
	// Validate reports whether the scalar is inside the curve's private-key
	// range. It never errors for a merely invalid key.
	Validate() bool
}

// Secp256k1 is the default curve engine.
type Secp256k1 struct{}

// DefaultCurve is the engine used by the wallet package.
var DefaultCurve Curve = Secp256k1{}

// KeyFromPrivate parses a 64-hex private scalar (optional 0x prefix) into a
// key pair handle. Malformed hex or a wrong length is an error; an
// out-of-range scalar parses but fails Validate.
func (Secp256k1) KeyFromPrivate(privHex string) (KeyPair, error) {
	b, err := common.DecodeHex(privHex)
	if err != nil || len(b) != PrivateKeySize {
		return nil, errors.NewError(errors.ErrCodeInvalidPrivateKey, errors.ErrMsgInvalidPrivateKey)
	}

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(b)
	valid := !overflow && !scalar.IsZero()
	scalar.Zero()

	return &secpKeyPair{priv: secp256k1.PrivKeyFromBytes(b), valid: valid}, nil
}

type secpKeyPair struct {
	priv  *secp256k1.PrivateKey
	valid bool
}

func (kp *secpKeyPair) PublicKey(compressed bool) string {
	if compressed {
		return common.EncodeToHex(kp.priv.PubKey().SerializeCompressed())
	}
	return common.EncodeToHex(kp.priv.PubKey().SerializeUncompressed())
}

func (kp *secpKeyPair) Validate() bool {
	return kp.valid
}
