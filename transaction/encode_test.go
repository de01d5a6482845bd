package transaction

import (
	"encoding/hex"
	"strings"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/holiman/uint256"

	"zyn/errors"
)

const (
	testPubKey = "040dd505bc4a2e1edd01388a33880a23a16a29fb7432d7fec9e059be41d8e203c913253fb0c091d3ae5e3150abab42fa4e9b6753ba9ed0f81f58fdb903df6f2e7d"
	testTo     = "b301dc3c11340e6babf604af90b86de954029ff0"

	// Reference vector: version=65537 (chain 1, msg 1), nonce=7, amount=1000000,
	// gasPrice=2000, gasLimit=50000, empty code and data, keys above. A network
	// node reconstructs this byte-for-byte; any drift here is a wire break.
	goldenEmptyCodeData = "00000000000000000000000000000000000000000000000000000000000100010000000000000000000000000000000000000000000000000000000000000007b301dc3c11340e6babf604af90b86de954029ff0040dd505bc4a2e1edd01388a33880a23a16a29fb7432d7fec9e059be41d8e203c913253fb0c091d3ae5e3150abab42fa4e9b6753ba9ed0f81f58fdb903df6f2e7d00000000000000000000000000000000000000000000000000000000000f424000000000000000000000000000000000000000000000000000000000000007d0000000000000000000000000000000000000000000000000000000000000c3500000000000000000"

	// Same fields with code="hello", data=0x0102.
	goldenWithCodeData = "00000000000000000000000000000000000000000000000000000000000100010000000000000000000000000000000000000000000000000000000000000007b301dc3c11340e6babf604af90b86de954029ff0040dd505bc4a2e1edd01388a33880a23a16a29fb7432d7fec9e059be41d8e203c913253fb0c091d3ae5e3150abab42fa4e9b6753ba9ed0f81f58fdb903df6f2e7d00000000000000000000000000000000000000000000000000000000000f424000000000000000000000000000000000000000000000000000000000000007d0000000000000000000000000000000000000000000000000000000000000c3500000000568656c6c6f000000020102"
)

func referenceTx() *Transaction {
	return &Transaction{
		Version:  65537,
		Nonce:    7,
		To:       testTo,
		Amount:   uint256.NewInt(1000000),
		PubKey:   testPubKey,
		GasPrice: uint256.NewInt(2000),
		GasLimit: 50000,
	}
}

func TestCanonicalHexGoldenVector(t *testing.T) {
	tx := referenceTx()
	got, err := tx.CanonicalHex()
	if err != nil {
		t.Fatalf("CanonicalHex failed: %v", err)
	}
	if got != goldenEmptyCodeData {
		t.Errorf("canonical message mismatch:\n got %s\nwant %s", got, goldenEmptyCodeData)
	}

	tx.Code = "hello"
	tx.Data = "\x01\x02"
	got, err = tx.CanonicalHex()
	if err != nil {
		t.Fatalf("CanonicalHex with code/data failed: %v", err)
	}
	if got != goldenWithCodeData {
		t.Errorf("canonical message with code/data mismatch:\n got %s\nwant %s", got, goldenWithCodeData)
	}
}

func TestCanonicalHexEmptyCodeDataTail(t *testing.T) {
	tx := referenceTx()
	got, err := tx.CanonicalHex()
	if err != nil {
		t.Fatalf("CanonicalHex failed: %v", err)
	}
	// Empty code and data encode as two 32-bit zero lengths with nothing after.
	if !strings.HasSuffix(got, "00000000"+"00000000") {
		t.Errorf("expected two zero length words at the tail, got ...%s", got[len(got)-20:])
	}
	if len(got) != 5*64+40+len(testPubKey)+2*8 {
		t.Errorf("unexpected canonical length %d", len(got))
	}
}

func TestSigningBytesRoundTrip(t *testing.T) {
	tx := referenceTx()
	h, err := tx.CanonicalHex()
	if err != nil {
		t.Fatal(err)
	}
	b, err := tx.SigningBytes()
	if err != nil {
		t.Fatalf("SigningBytes failed: %v", err)
	}
	if hex.EncodeToString(b) != h {
		t.Error("SigningBytes does not match CanonicalHex")
	}
}

func TestCanonicalHexNilAmountsEncodeAsZero(t *testing.T) {
	tx := referenceTx()
	tx.Amount = nil
	tx.GasPrice = nil
	got, err := tx.CanonicalHex()
	if err != nil {
		t.Fatalf("CanonicalHex failed: %v", err)
	}
	zeros := strings.Repeat("0", 64)
	offset := 2*64 + 40 + len(testPubKey)
	if got[offset:offset+64] != zeros {
		t.Error("nil amount should encode as a zero word")
	}
}

func TestCanonicalHexRejectsBadRecipient(t *testing.T) {
	for _, to := range []string{
		"",
		"b301dc3c11340e6babf604af90b86de954029ff",    // 39 chars
		"b301dc3c11340e6babf604af90b86de954029ff0a",  // 41 chars
		"g301dc3c11340e6babf604af90b86de954029ff0",   // non-hex
		"0xb301dc3c11340e6babf604af90b86de954029ff0", // prefix not allowed here
	} {
		tx := referenceTx()
		tx.To = to
		if _, err := tx.CanonicalHex(); !errors.IsCode(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("recipient %q: expected invalid_argument, got %v", to, err)
		}
	}
}

func TestCanonicalHexRejectsBadPubKey(t *testing.T) {
	for _, pub := range []string{"", "04zz", "abc"} {
		tx := referenceTx()
		tx.PubKey = pub
		if _, err := tx.CanonicalHex(); !errors.IsCode(err, errors.ErrCodeInvalidPublicKey) {
			t.Errorf("pubkey %q: expected invalid_public_key, got %v", pub, err)
		}
	}
}

func TestCanonicalHexUppercaseInputsNormalized(t *testing.T) {
	tx := referenceTx()
	tx.To = strings.ToUpper(tx.To)
	tx.PubKey = strings.ToUpper(tx.PubKey)
	got, err := tx.CanonicalHex()
	if err != nil {
		t.Fatalf("CanonicalHex failed: %v", err)
	}
	if got != goldenEmptyCodeData {
		t.Error("uppercase address/pubkey should normalize to the same message")
	}
}

func TestCanonicalHexFuzzInvariants(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 200; i++ {
		var fields struct {
			Version  uint64
			Nonce    uint64
			Amount   uint64
			GasPrice uint64
			GasLimit uint64
			Code     string
			Data     string
		}
		f.Fuzz(&fields)

		tx := &Transaction{
			Version:  fields.Version,
			Nonce:    fields.Nonce,
			To:       testTo,
			Amount:   uint256.NewInt(fields.Amount),
			PubKey:   testPubKey,
			GasPrice: uint256.NewInt(fields.GasPrice),
			GasLimit: fields.GasLimit,
			Code:     fields.Code,
			Data:     fields.Data,
		}
		got, err := tx.CanonicalHex()
		if err != nil {
			t.Fatalf("CanonicalHex failed for fuzzed fields: %v", err)
		}
		if len(got)%2 != 0 {
			t.Fatal("canonical message must have even hex length")
		}
		if _, err := hex.DecodeString(got); err != nil {
			t.Fatalf("canonical message is not valid hex: %v", err)
		}
		want := 5*64 + 40 + len(testPubKey) + 2*8 + 2*len(fields.Code) + 2*len(fields.Data)
		if len(got) != want {
			t.Fatalf("canonical length %d, want %d", len(got), want)
		}
	}
}
