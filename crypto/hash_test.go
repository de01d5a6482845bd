package crypto

import (
	"testing"
)

func TestSum256KnownVector(t *testing.T) {
	// sha256("")
	got := Sum256(nil).Hex()
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Errorf("Sum256(nil) = %s, want %s", got, want)
	}
}

func TestHexSlice(t *testing.T) {
	d := Sum256([]byte("abc"))
	full := d.Hex()

	if d.HexSlice(0, DigestSize) != full {
		t.Error("full-range slice should equal Hex()")
	}
	if d.HexSlice(0, 20) != full[:40] {
		t.Error("left slice mismatch")
	}
	if d.HexSlice(12, 32) != full[24:] {
		t.Error("right slice mismatch")
	}
	if d.HexSlice(-4, 99) != full {
		t.Error("out-of-range bounds should clamp to the digest")
	}
	if d.HexSlice(20, 20) != "" {
		t.Error("empty range should yield an empty string")
	}
}
