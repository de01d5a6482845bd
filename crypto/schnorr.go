package crypto

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"

	"zyn/common"
	"zyn/errors"
)

// Signer is the external Schnorr signing capability. Implementations must
// guarantee a cryptographically unpredictable nonce per signature and
// constant-time scalar operations.
type Signer interface {
	Sign(message, privKey, pubKey []byte) (r, s *big.Int, err error)
}

// SchnorrSigner signs with the secp256k1 Schnorr scheme. The message is
// digested to 32 bytes before the curve-level sign.
type SchnorrSigner struct{}

func (SchnorrSigner) Sign(message, privKey, pubKey []byte) (*big.Int, *big.Int, error) {
	if len(privKey) != PrivateKeySize {
		return nil, nil, errors.NewError(errors.ErrCodeInvalidPrivateKey, errors.ErrMsgInvalidPrivateKey)
	}

	priv := secp256k1.PrivKeyFromBytes(privKey)
	defer priv.Zero()

	digest := Sum256(message)
	sig, err := schnorr.Sign(priv, digest.Bytes())
	if err != nil {
		return nil, nil, errors.NewError(errors.ErrCodeSigningFailed, errors.ErrMsgSigningFailed)
	}

	// Serialized form is r (32 bytes) followed by s (32 bytes).
	ser := sig.Serialize()
	r := new(big.Int).SetBytes(ser[:32])
	s := new(big.Int).SetBytes(ser[32:])
	return r, s, nil
}

// VerifySignature checks a formatted 128-hex signature over message against a
// hex-encoded public key. It never errors; any malformed input is false.
func VerifySignature(message []byte, pubKeyHex, sigHex string) bool {
	sigBytes, err := common.DecodeHex(sigHex)
	if err != nil || len(sigBytes) != 2*componentByteLen {
		return false
	}
	pubBytes, err := common.DecodeHex(pubKeyHex)
	if err != nil {
		return false
	}
	pub, err := secp256k1.ParsePubKey(pubBytes)
	if err != nil {
		return false
	}
	sig, err := schnorr.ParseSignature(sigBytes)
	if err != nil {
		return false
	}

	digest := Sum256(message)
	return sig.Verify(digest.Bytes(), pub)
}
