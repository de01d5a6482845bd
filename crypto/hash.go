package crypto

import (
	"encoding/hex"

	sha256 "github.com/minio/sha256-simd"
)

// DigestSize is the byte length of the chain digest.
const DigestSize = 32

// Digest is a 256-bit hash output.
type Digest [DigestSize]byte

// Sum256 computes the chain digest over b.
func Sum256(b []byte) Digest {
	return Digest(sha256.Sum256(b))
}

func (d Digest) Bytes() []byte {
	return d[:]
}

// Hex returns the full digest as lowercase hex.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// HexSlice returns the hex encoding of digest bytes [start, end).
// Out-of-range bounds are clamped to the digest.
func (d Digest) HexSlice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > DigestSize {
		end = DigestSize
	}
	if start >= end {
		return ""
	}
	return hex.EncodeToString(d[start:end])
}
