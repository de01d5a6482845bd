package wallet

import (
	"zyn/common"
	"zyn/crypto"
	"zyn/logx"
	"zyn/stringutil"
	"zyn/transaction"
)

// Wallet represents a user's key pair and derived address.
type Wallet struct {
	PrivateKey string
	PublicKey  string
	Address    string

	signer crypto.Signer
}

// NewWallet generates a wallet from fresh entropy.
func NewWallet() (*Wallet, error) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return FromPrivateKey(priv)
}

// FromPrivateKey builds a wallet around an existing private scalar.
func FromPrivateKey(privKey string) (*Wallet, error) {
	pub, err := DerivePublicKey(privKey)
	if err != nil {
		return nil, err
	}
	addr, err := DeriveAddress(privKey)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		PrivateKey: privKey,
		PublicKey:  pub,
		Address:    addr,
		signer:     crypto.SchnorrSigner{},
	}, nil
}

// SetSigner swaps the signing capability, for callers whose keys live behind
// an external signer.
func (w *Wallet) SetSigner(s crypto.Signer) {
	w.signer = s
}

// SignTransaction fills the transaction's sender public key, computes the
// canonical signing message, and attaches the formatted 128-hex signature.
// The transaction is untouched on error.
func (w *Wallet) SignTransaction(tx *transaction.Transaction) error {
	signed := *tx
	signed.PubKey = w.PublicKey

	msg, err := signed.SigningBytes()
	if err != nil {
		return err
	}
	privBytes, err := common.DecodeHex(w.PrivateKey)
	if err != nil {
		return err
	}
	pubBytes, err := common.DecodeHex(w.PublicKey)
	if err != nil {
		return err
	}

	r, s, err := w.signer.Sign(msg, privBytes, pubBytes)
	if err != nil {
		return err
	}
	sigHex, err := crypto.Signature{R: r, S: s}.Hex()
	if err != nil {
		return err
	}

	tx.PubKey = signed.PubKey
	tx.Signature = sigHex
	logx.Debug("WALLET", "signed transaction ", stringutil.ShortenLog(tx.Hash()))
	return nil
}
