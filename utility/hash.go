package utility

import (
	"crypto/md5" //nolint:gosec // legacy checksums only
	"crypto/sha1" //nolint:gosec // legacy checksums only
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DigestAlgorithm represents the hash function used by HexDigest.
type DigestAlgorithm string

const (
	// DigestMD5 represents MD5. It must not be used where collision resistance matters.
	DigestMD5 DigestAlgorithm = "md5"

	// DigestSHA1 represents SHA-1. It must not be used where collision resistance matters.
	DigestSHA1 DigestAlgorithm = "sha1"

	// DigestSHA256 represents SHA-256.
	DigestSHA256 DigestAlgorithm = "sha256"

	// DigestSHA512 represents SHA-512.
	DigestSHA512 DigestAlgorithm = "sha512"

	// DigestSHA3256 represents SHA3-256.
	DigestSHA3256 DigestAlgorithm = "sha3-256"

	// DigestBLAKE2b256 represents unkeyed BLAKE2b-256.
	DigestBLAKE2b256 DigestAlgorithm = "blake2b-256"
)

// HexDigest hashes the UTF-8 bytes of s with the given algorithm and returns
// the digest as lower-case hexadecimal, two characters per byte.
//
// Blank input yields an empty string and no error.
//
// Parameters:
//   - alg: the digest algorithm to use.
//   - s: the text to hash.
//
// Returns:
//   - string: the hex encoded digest.
//   - error: unknown algorithm.
//
// Example usage:
//
//	sum, err := HexDigest(DigestSHA256, "hello")
func HexDigest(alg DigestAlgorithm, s string) (string, error) {
	if IsBlank(s) {
		return "", nil
	}

	h, err := newHash(alg)
	if err != nil {
		return "", err
	}

	// hash.Hash.Write never returns an error
	_, _ = h.Write([]byte(s))

	return hex.EncodeToString(h.Sum(nil)), nil
}

// MD5Hex returns the MD5 digest of s as 32 lower-case hexadecimal characters,
// or an empty string if s is blank. It is meant for legacy-compatible
// checksums, never for anything security related.
//
// MD5Hex panics if the digest cannot be computed.
//
// Example:
//
//	MD5Hex("hello") // "5d41402abc4b2a76b9719d911017c592"
func MD5Hex(s string) string {
	sum, err := HexDigest(DigestMD5, s)
	if err != nil {
		panic(fmt.Errorf("md5 digest failed: %w", err))
	}

	return sum
}

func newHash(alg DigestAlgorithm) (hash.Hash, error) {
	switch alg {
	case DigestMD5:
		return md5.New(), nil //nolint:gosec // legacy checksums only
	case DigestSHA1:
		return sha1.New(), nil //nolint:gosec // legacy checksums only
	case DigestSHA256:
		return sha256.New(), nil
	case DigestSHA512:
		return sha512.New(), nil
	case DigestSHA3256:
		return sha3.New256(), nil
	case DigestBLAKE2b256:
		return blake2b.New256(nil)
	default:
		return nil, errors.New("unknown digest algorithm")
	}
}
