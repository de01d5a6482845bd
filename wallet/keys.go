package wallet

import (
	"zyn/common"
	"zyn/crypto"
	"zyn/errors"
)

// AddressSize is the byte length of an on-chain address.
const AddressSize = 20

// GeneratePrivateKey draws 32 bytes from the platform CSPRNG and returns them
// as a 0x-prefixed 64-hex scalar. Fails with entropy_unavailable if the
// secure source cannot be read.
func GeneratePrivateKey() (string, error) {
	b, err := crypto.ReadEntropy(crypto.PrivateKeySize)
	if err != nil {
		return "", err
	}
	return common.EncodeToPrefixedHex(b), nil
}

// DerivePublicKey returns the 130-hex uncompressed public key for the given
// private scalar.
func DerivePublicKey(privKey string) (string, error) {
	kp, err := crypto.DefaultCurve.KeyFromPrivate(privKey)
	if err != nil {
		return "", err
	}
	if !kp.Validate() {
		return "", errors.NewError(errors.ErrCodeInvalidPrivateKey, errors.ErrMsgInvalidPrivateKey)
	}
	return kp.PublicKey(false), nil
}

// DeriveAddress derives the account address for a private key: the digest of
// the uncompressed public key, keeping the leftmost 20 bytes.
func DeriveAddress(privKey string) (string, error) {
	pub, err := DerivePublicKey(privKey)
	if err != nil {
		return "", err
	}
	pubBytes, err := common.DecodeHex(pub)
	if err != nil {
		return "", errors.NewError(errors.ErrCodeInternal, err.Error())
	}
	digest := crypto.Sum256(pubBytes)
	return digest.HexSlice(0, AddressSize), nil
}

// AddressFromPublicKey derives an address from a public key: the digest of
// the key bytes, keeping bytes 12..31 (the rightmost 160 bits).
//
// This is NOT the same slice DeriveAddress takes. The two conventions both
// exist on chain and must both be preserved; do not unify them here.
func AddressFromPublicKey(pubKey string) (string, error) {
	pubBytes, err := common.DecodeHex(pubKey)
	if err != nil || len(pubBytes) == 0 {
		return "", errors.NewError(errors.ErrCodeInvalidPublicKey, errors.ErrMsgInvalidPublicKey)
	}
	digest := crypto.Sum256(pubBytes)
	return digest.HexSlice(crypto.DigestSize-AddressSize, crypto.DigestSize), nil
}

// VerifyPrivateKey reports whether privKey is a well-formed scalar inside the
// curve's private-key range. It returns false, never an error, for an
// invalid key.
func VerifyPrivateKey(privKey string) bool {
	kp, err := crypto.DefaultCurve.KeyFromPrivate(privKey)
	return err == nil && kp.Validate()
}
